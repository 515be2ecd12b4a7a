package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Medjool Dates", "medjool-dates"},
		{"  Fresh -- Citrus!! ", "fresh-citrus"},
		{"Crème Brûlée", "creme-brulee"},
		{"Potatoes (Grade A) 2024", "potatoes-grade-a-2024"},
		{"تمور", ""},
		{"Dates تمور", "dates"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Slugify(tt.in)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.True(t, ValidSlug(got))
			}
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	got := Slugify(strings.Repeat("word ", 60))
	assert.LessOrEqual(t, len(got), maxSlugLength)
	assert.True(t, ValidSlug(got))
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("fresh-dates-2024"))
	assert.False(t, ValidSlug("Fresh-Dates"))
	assert.False(t, ValidSlug("-dates"))
	assert.False(t, ValidSlug("dates-"))
	assert.False(t, ValidSlug("da--tes"))
	assert.False(t, ValidSlug("dates/../x"))
	assert.False(t, ValidSlug(""))
}

func TestResolveSlug(t *testing.T) {
	taken := map[string]bool{"dates": true, "dates-2": true}
	exists := func(_ context.Context, slug string, _ *uuid.UUID) (bool, error) {
		return taken[slug], nil
	}
	ctx := context.Background()

	slug, err := resolveSlug(ctx, "", "Dates", nil, exists)
	require.NoError(t, err)
	assert.Equal(t, "dates-3", slug)

	slug, err = resolveSlug(ctx, "fresh-figs", "Figs", nil, exists)
	require.NoError(t, err)
	assert.Equal(t, "fresh-figs", slug)

	_, err = resolveSlug(ctx, "dates", "Dates", nil, exists)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = resolveSlug(ctx, "Not A Slug", "x", nil, exists)
	assert.ErrorIs(t, err, ErrInvalidSlug)
	assert.ErrorIs(t, err, ErrInvalidInput)

	slug, err = resolveSlug(ctx, "", "تمور", nil, exists)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(slug, "item-"))
	assert.True(t, ValidSlug(slug))
}

func TestResolveSlug_SuffixFitsMaxLength(t *testing.T) {
	name := strings.Repeat("a", maxSlugLength)
	taken := map[string]bool{name: true}
	exists := func(_ context.Context, slug string, _ *uuid.UUID) (bool, error) {
		return taken[slug], nil
	}
	ctx := context.Background()

	slug, err := resolveSlug(ctx, "", name, nil, exists)
	require.NoError(t, err)
	assert.Len(t, slug, maxSlugLength)
	assert.True(t, strings.HasSuffix(slug, "-2"))
	assert.True(t, ValidSlug(slug))

	// the stored slug is accepted when sent back unchanged on update
	id := uuid.New()
	again, err := resolveSlug(ctx, slug, name, &id, exists)
	require.NoError(t, err)
	assert.Equal(t, slug, again)

	// a cut that lands on a hyphen does not produce "--"
	hyphenated := strings.Repeat("a", maxSlugLength-3) + "-bb"
	taken[hyphenated] = true
	slug, err = resolveSlug(ctx, "", hyphenated, nil, exists)
	require.NoError(t, err)
	assert.True(t, ValidSlug(slug), slug)
}
