package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/mapper"
	"github.com/harvest-export/website/internal/repository"
	"github.com/harvest-export/website/internal/storage"
	"go.uber.org/zap"
)

// allowedMediaTypes maps accepted image types to the extension used for the stored key
var allowedMediaTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// MediaService stores uploaded images for use in content
type MediaService struct {
	mediaRepo *repository.MediaRepository
	storage   storage.Storage
	maxBytes  int64
	logger    *zap.Logger
	now       func() time.Time
}

// NewMediaService creates a new media service instance
func NewMediaService(mediaRepo *repository.MediaRepository, store storage.Storage, maxBytes int64, logger *zap.Logger) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		storage:   store,
		maxBytes:  maxBytes,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// MaxBytes returns the upload size limit
func (s *MediaService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload sniffs, stores and records an image. The declared content type is ignored.
func (s *MediaService) Upload(ctx context.Context, fileName string, data io.Reader) (*domain.MediaDTO, error) {
	buf, err := io.ReadAll(io.LimitReader(data, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(buf) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(buf)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	contentType := mimetype.Detect(buf).String()
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	ext, ok := allowedMediaTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, contentType)
	}

	now := s.now()
	key := fmt.Sprintf("media/%04d/%02d/%s%s", now.Year(), now.Month(), uuid.NewString(), ext)

	storagePath, size, err := s.storage.Upload(ctx, key, contentType, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	media := &domain.Media{
		FileName:    sanitizeFileName(fileName),
		ContentType: contentType,
		Size:        size,
		StoragePath: storagePath,
		URL:         s.storage.URL(storagePath),
	}
	if err := s.mediaRepo.Create(ctx, media); err != nil {
		if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
			s.logger.Warn("failed to remove orphaned upload", zap.String("path", storagePath), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to save media: %w", err)
	}

	s.logger.Info("media uploaded",
		zap.String("id", media.ID.String()),
		zap.String("content_type", contentType),
		zap.Int64("size", size))

	dto := mapper.ToMediaDTO(media)
	return &dto, nil
}

// List returns a page of uploads, newest first
func (s *MediaService) List(ctx context.Context, page, pageSize int) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	items, total, err := s.mediaRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	dtos := make([]domain.MediaDTO, len(items))
	for i := range items {
		dtos[i] = mapper.ToMediaDTO(&items[i])
	}

	resp := domain.NewPaginatedResponse(dtos, total, page, pageSize)
	return &resp, nil
}

// Delete removes an upload from storage and the media table
func (s *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return translateRepoError(err, "get media")
	}
	if err := s.storage.Delete(ctx, media.StoragePath); err != nil {
		s.logger.Warn("failed to delete stored file", zap.String("path", media.StoragePath), zap.Error(err))
	}
	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "delete media")
	}
	return nil
}

// maxFileNameLength caps stored file names in bytes
const maxFileNameLength = 255

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload"
	}
	name = strings.ToValidUTF8(name, "")
	if name == "" {
		return "upload"
	}
	if len(name) <= maxFileNameLength {
		return name
	}

	ext := path.Ext(name)
	if len(ext) >= maxFileNameLength/2 {
		ext = ""
	}
	stem := name[:len(name)-len(ext)]
	cut := maxFileNameLength - len(ext)
	for cut > 0 && !utf8.RuneStart(stem[cut]) {
		cut--
	}
	return stem[:cut] + ext
}
