package service

import (
	"strings"
	"testing"
	"time"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostService_StatusRules(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour).Format(time.RFC3339)
	past := now.Add(-48 * time.Hour).Format(time.RFC3339)

	tests := []struct {
		name          string
		req           domain.BlogPostRequest
		wantStatus    domain.BlogPostStatus
		wantPublished string
		wantErr       error
	}{
		{
			name:       "default is draft",
			req:        domain.BlogPostRequest{Title: "Draft"},
			wantStatus: domain.BlogPostStatusDraft,
		},
		{
			name:       "scheduled in the future",
			req:        domain.BlogPostRequest{Title: "Later", Status: domain.BlogPostStatusScheduled, PublishAt: future},
			wantStatus: domain.BlogPostStatusScheduled,
		},
		{
			name:          "scheduled in the past publishes at that time",
			req:           domain.BlogPostRequest{Title: "Backdated", Status: domain.BlogPostStatusScheduled, PublishAt: past},
			wantStatus:    domain.BlogPostStatusPublished,
			wantPublished: "2025-03-08T12:00:00Z",
		},
		{
			name:          "published now",
			req:           domain.BlogPostRequest{Title: "Now", Status: domain.BlogPostStatusPublished},
			wantStatus:    domain.BlogPostStatusPublished,
			wantPublished: "2025-03-10T12:00:00Z",
		},
		{
			name:       "published with a future date is scheduled",
			req:        domain.BlogPostRequest{Title: "Embargoed", Status: domain.BlogPostStatusPublished, PublishAt: future},
			wantStatus: domain.BlogPostStatusScheduled,
		},
		{
			name:          "published with a past date keeps that date",
			req:           domain.BlogPostRequest{Title: "Archive", Status: domain.BlogPostStatusPublished, PublishAt: past},
			wantStatus:    domain.BlogPostStatusPublished,
			wantPublished: "2025-03-08T12:00:00Z",
		},
		{
			name:    "scheduled without time",
			req:     domain.BlogPostRequest{Title: "Broken", Status: domain.BlogPostStatusScheduled},
			wantErr: ErrPublishAtRequired,
		},
		{
			name:    "unparseable time",
			req:     domain.BlogPostRequest{Title: "Broken", Status: domain.BlogPostStatusScheduled, PublishAt: "tomorrow"},
			wantErr: ErrInvalidPublishAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices(t)
			s.posts.now = fixedClock(now)

			post, err := s.posts.Create(ctx(), &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, post.Status)
			assert.Equal(t, tt.wantPublished, post.PublishedAt)
		})
	}
}

func TestBlogPostService_RepublishKeepsFirstDate(t *testing.T) {
	s := newTestServices(t)
	first := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	s.posts.now = fixedClock(first)

	post, err := s.posts.Create(ctx(), &domain.BlogPostRequest{Title: "Harvest report", Status: domain.BlogPostStatusPublished})
	require.NoError(t, err)

	s.posts.now = fixedClock(first.Add(30 * 24 * time.Hour))
	updated, err := s.posts.Update(ctx(), post.ID, &domain.BlogPostRequest{
		Title: "Harvest report (updated)", Status: domain.BlogPostStatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T09:00:00Z", updated.PublishedAt)
	assert.Equal(t, "harvest-report", updated.Slug)

	drafted, err := s.posts.Update(ctx(), post.ID, &domain.BlogPostRequest{Title: "Harvest report", Status: domain.BlogPostStatusDraft})
	require.NoError(t, err)
	assert.Empty(t, drafted.PublishedAt)
}

func TestBlogPostService_PublishScheduled(t *testing.T) {
	s := newTestServices(t)
	now := time.Now().UTC().Truncate(time.Second)
	s.posts.now = fixedClock(now)

	soon := now.Add(time.Minute).Format(time.RFC3339)
	post, err := s.posts.Create(ctx(), &domain.BlogPostRequest{Title: "Soon", Status: domain.BlogPostStatusScheduled, PublishAt: soon})
	require.NoError(t, err)

	count, err := s.posts.PublishScheduled(ctx())
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = s.posts.GetPublicBySlug(ctx(), post.Slug, domain.LanguageEnglish)
	assert.ErrorIs(t, err, ErrNotFound)

	s.posts.now = fixedClock(now.Add(2 * time.Minute))
	count, err = s.posts.PublishScheduled(ctx())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := s.posts.GetByID(ctx(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BlogPostStatusPublished, got.Status)
	assert.Equal(t, got.PublishAt, got.PublishedAt)
}

func TestBlogPostService_PublicRendering(t *testing.T) {
	s := newTestServices(t)
	_, err := s.posts.Create(ctx(), &domain.BlogPostRequest{
		Title:     "Date season",
		TitleAr:   "موسم التمور",
		Content:   "## Harvest\n\nThe **best** dates. <script>alert(1)</script>",
		ContentAr: "## الحصاد\n\nأفضل التمور.",
		Status:    domain.BlogPostStatusPublished,
	})
	require.NoError(t, err)
	testutil.CreateTestPost(t, s.db, "Hidden draft", "hidden-draft", domain.BlogPostStatusDraft)

	en, err := s.posts.GetPublicBySlug(ctx(), "date-season", domain.LanguageEnglish)
	require.NoError(t, err)
	assert.Contains(t, en.ContentHTML, "<strong>best</strong>")
	assert.NotContains(t, en.ContentHTML, "<script")
	assert.True(t, strings.HasPrefix(en.Excerpt, "Harvest"))

	ar, err := s.posts.GetPublicBySlug(ctx(), "date-season", domain.LanguageArabic)
	require.NoError(t, err)
	assert.Equal(t, "موسم التمور", ar.Title)
	assert.Contains(t, ar.ContentHTML, "الحصاد")

	_, err = s.posts.GetPublicBySlug(ctx(), "hidden-draft", domain.LanguageEnglish)
	assert.ErrorIs(t, err, ErrNotFound)

	page, err := s.posts.ListPublic(ctx(), 1, 10, domain.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	list := page.Data.([]domain.PublicBlogPostDTO)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].ContentHTML)
}
