package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalize(t *testing.T) {
	assert.Equal(t, "Dates", Localize(LanguageEnglish, "Dates", "تمور"))
	assert.Equal(t, "تمور", Localize(LanguageArabic, "Dates", "تمور"))
	assert.Equal(t, "Dates", Localize(LanguageArabic, "Dates", ""))
	assert.Equal(t, "Dates", Localize(LanguageArabic, "Dates", "   "))
	assert.Equal(t, "Dates", Localize(Language("fr"), "Dates", "تمور"))
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"en", LanguageEnglish, true},
		{"AR", LanguageArabic, true},
		{"ar-EG", LanguageArabic, true},
		{"en_US", LanguageEnglish, true},
		{"fr", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLanguage(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlogPost_IsPublic(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&BlogPost{Status: BlogPostStatusPublished, PublishedAt: &past}).IsPublic(now))
	assert.True(t, (&BlogPost{Status: BlogPostStatusPublished, PublishedAt: &now}).IsPublic(now))
	assert.False(t, (&BlogPost{Status: BlogPostStatusPublished, PublishedAt: &future}).IsPublic(now))
	assert.False(t, (&BlogPost{Status: BlogPostStatusPublished}).IsPublic(now))
	assert.False(t, (&BlogPost{Status: BlogPostStatusScheduled, PublishedAt: &past}).IsPublic(now))
	assert.False(t, (&BlogPost{Status: BlogPostStatusDraft, PublishedAt: &past}).IsPublic(now))
}

func TestHomepageSection_IsValid(t *testing.T) {
	for _, s := range HomepageSections {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, HomepageSection("offers").IsValid())
}

func TestNewPaginatedResponse(t *testing.T) {
	assert.Equal(t, 3, NewPaginatedResponse(nil, 41, 1, 20).TotalPages)
	assert.Equal(t, 2, NewPaginatedResponse(nil, 40, 1, 20).TotalPages)
	assert.Equal(t, 0, NewPaginatedResponse(nil, 0, 1, 20).TotalPages)
}
