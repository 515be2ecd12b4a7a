package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/i18n"
	"github.com/harvest-export/website/internal/service"
	"go.uber.org/zap"
)

const maxContactForm = 64 << 10

type contactView struct {
	Form   domain.ContactRequest
	Errors map[string]string
}

func (s *Server) contactForm(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(r, "contact")

	switch r.URL.Query().Get("status") {
	case "sent":
		p.Flash, p.FlashKind = p.T("contact.success"), "success"
	case "rate_limited":
		p.Flash, p.FlashKind = p.T("contact.rate_limited"), "error"
	}

	p.Data = contactView{
		Form: domain.ContactRequest{Subject: strings.TrimSpace(r.URL.Query().Get("subject"))},
	}
	s.render(w, http.StatusOK, "contact", p)
}

// submitContact follows post/redirect/get: success redirects, failures re-render the filled form
func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactForm)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	// the form carries the language it was rendered in; the post itself may negotiate another
	lang, ok := domain.ParseLanguage(r.PostFormValue("lang"))
	if !ok {
		lang = i18n.FromContext(r.Context())
	}
	p := s.newPageLang(r, "contact", lang)

	form := domain.ContactRequest{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Company: strings.TrimSpace(r.PostFormValue("company")),
		Country: strings.TrimSpace(r.PostFormValue("country")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	view := contactView{Form: form}

	if err := s.validate.Struct(&form); err != nil {
		view.Errors = s.fieldErrors(p, err)
		p.Flash, p.FlashKind = p.T("contact.invalid"), "error"
		p.Data = view
		s.render(w, http.StatusUnprocessableEntity, "contact", p)
		return
	}

	client := service.ClientInfo{IPAddress: service.ClientIP(r), UserAgent: r.UserAgent()}
	if _, err := s.svc.Contact.Submit(r.Context(), &form, p.Lang, client); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvalidInput) {
			status = http.StatusUnprocessableEntity
			p.Flash = p.T("contact.invalid")
		} else {
			s.logger.Error("failed to submit contact message", zap.Error(err))
			p.Flash = p.T("contact.error")
		}
		p.FlashKind = "error"
		p.Data = view
		s.render(w, status, "contact", p)
		return
	}

	http.Redirect(w, r, "/contact?status=sent&lang="+string(p.Lang), http.StatusSeeOther)
}

// fieldErrors maps validation failures to translated messages keyed by form field
func (s *Server) fieldErrors(p *Page, err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		if _, seen := errs[field]; seen {
			continue
		}
		switch fe.Tag() {
		case "required", "email", "min", "max":
			errs[field] = p.T("validation." + fe.Tag())
		default:
			errs[field] = p.T("contact.invalid")
		}
	}
	return errs
}
