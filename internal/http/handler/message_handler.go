package handler

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

// MessageHandler serves the public contact endpoint and the admin inbox
type MessageHandler struct {
	contactService *service.ContactService
	logger         *zap.Logger
}

func NewMessageHandler(contactService *service.ContactService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// ContactReceipt is returned for an accepted contact submission
type ContactReceipt struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// Submit godoc
// @Summary Send a contact message
// @Description Rate limited per client IP
// @Tags Public
// @Accept json
// @Produce json
// @Param lang query string false "Language the visitor used" Enums(en, ar)
// @Param request body domain.ContactRequest true "Message"
// @Success 201 {object} ContactReceipt
// @Failure 400 {object} domain.APIError
// @Failure 429 {object} domain.APIError
// @Router /contact [post]
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	client := service.ClientInfo{IPAddress: service.ClientIP(r), UserAgent: r.UserAgent()}
	msg, err := h.contactService.Submit(r.Context(), &req, language(r), client)
	if err != nil {
		respondServiceError(w, h.logger, err, "submit contact message")
		return
	}
	respondJSON(w, http.StatusCreated, ContactReceipt{ID: msg.ID, Status: "received"})
}

// List godoc
// @Summary List contact messages
// @Tags Admin Messages
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param isRead query bool false "Filter by read state"
// @Param search query string false "Search name, email, company or subject"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ContactMessageDTO}
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/messages [get]
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	filters := &domain.ContactMessageFilters{
		IsRead: parseBoolQuery(r, "isRead"),
		Search: r.URL.Query().Get("search"),
	}
	result, err := h.contactService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		respondServiceError(w, h.logger, err, "list messages")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get a contact message
// @Tags Admin Messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} domain.ContactMessageDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/messages/{id} [get]
func (h *MessageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "message")
	if !ok {
		return
	}
	msg, err := h.contactService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get message")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// MarkRead godoc
// @Summary Mark a contact message read or unread
// @Description An empty body marks the message read
// @Tags Admin Messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body domain.MarkMessageReadRequest false "Read state"
// @Success 200 {object} domain.ContactMessageDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/messages/{id}/read [put]
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "message")
	if !ok {
		return
	}

	read := true
	if r.ContentLength != 0 {
		var req domain.MarkMessageReadRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.IsRead != nil {
			read = *req.IsRead
		}
	} else {
		_, _ = io.Copy(io.Discard, r.Body)
	}

	msg, err := h.contactService.MarkRead(r.Context(), id, read)
	if err != nil {
		respondServiceError(w, h.logger, err, "mark message read")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// Delete godoc
// @Summary Delete a contact message
// @Tags Admin Messages
// @Param id path string true "Message ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/messages/{id} [delete]
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "message")
	if !ok {
		return
	}
	if err := h.contactService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete message")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
