package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized is returned when user is not authenticated
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned for a failed admin login
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)

	ErrInvalidSlug        = fmt.Errorf("%w: slug may only contain lower-case letters, digits and hyphens", ErrInvalidInput)
	ErrDuplicateSlug      = fmt.Errorf("%w: slug already in use", ErrConflict)
	ErrDuplicateCode      = fmt.Errorf("%w: country code already in use", ErrConflict)
	ErrInvalidCountryCode = fmt.Errorf("%w: country code must be two letters", ErrInvalidInput)
	ErrCategoryNotFound   = fmt.Errorf("%w: category does not exist", ErrInvalidInput)
	ErrPublishAtRequired  = fmt.Errorf("%w: publishAt is required for scheduled posts", ErrInvalidInput)
	ErrInvalidPublishAt   = fmt.Errorf("%w: publishAt must be an RFC 3339 timestamp", ErrInvalidInput)

	ErrInvalidSection     = fmt.Errorf("%w: unknown homepage section", ErrInvalidInput)
	ErrEntityNotFound     = fmt.Errorf("%w: entity does not exist", ErrInvalidInput)
	ErrAlreadyCurated     = fmt.Errorf("%w: entity is already in this section", ErrConflict)
	ErrReorderMismatch    = fmt.Errorf("%w: ids must list every item of the section exactly once", ErrInvalidInput)
	ErrFileTooLarge       = fmt.Errorf("%w: file exceeds the upload limit", ErrInvalidInput)
	ErrUnsupportedFile    = fmt.Errorf("%w: unsupported file type", ErrInvalidInput)
	ErrEmptyFile          = fmt.Errorf("%w: file is empty", ErrInvalidInput)
	ErrWeakPassword       = fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	ErrAdminAlreadyExists = fmt.Errorf("%w: an admin with this email already exists", ErrConflict)
)

// translateRepoError maps gorm errors onto service errors and wraps with context
func translateRepoError(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("failed to %s: %w", action, ErrConflict)
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}
