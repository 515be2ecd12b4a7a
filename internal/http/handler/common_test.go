package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/harvest-export/website/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestDetailOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"bare sentinel", service.ErrNotFound, "resource not found"},
		{"wrapped sentinel", service.ErrDuplicateSlug, "slug already in use"},
		{"detail containing a colon", fmt.Errorf("%w: text/plain", service.ErrUnsupportedFile), "unsupported file type: text/plain"},
		{"caller context dropped", fmt.Errorf("failed to create category: %w", service.ErrConflict), "resource conflict"},
		{"caller context around a wrapped sentinel", fmt.Errorf("failed to update post: %w", service.ErrPublishAtRequired), "publishAt is required for scheduled posts"},
		{"unrelated error", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detailOf(tt.err))
		})
	}
}
