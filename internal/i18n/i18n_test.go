package i18n

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/harvest-export/website/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func newTestBundle(t *testing.T, dir string) *Bundle {
	t.Helper()
	b, err := NewBundle(dir, zap.NewNop())
	require.NoError(t, err)
	return b
}

func TestCatalogsDefineTheSameKeys(t *testing.T) {
	b := newTestBundle(t, "")
	en := b.Keys(domain.LanguageEnglish)
	ar := b.Keys(domain.LanguageArabic)
	require.NotEmpty(t, en)
	if diff := cmp.Diff(en, ar); diff != "" {
		t.Errorf("catalog keys differ (-en +ar):\n%s", diff)
	}
}

func TestBundle_T(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"only.english": "English only"}`), 0o644))
	b := newTestBundle(t, dir)

	assert.Equal(t, "Products", b.T(domain.LanguageEnglish, "nav.products"))
	assert.Equal(t, "المنتجات", b.T(domain.LanguageArabic, "nav.products"))
	assert.Equal(t, "English only", b.T(domain.LanguageArabic, "only.english"))
	assert.Equal(t, "missing.key", b.T(domain.LanguageArabic, "missing.key"))
	assert.Equal(t, "Products", b.T("fr", "nav.products"))
	assert.False(t, b.Has(domain.LanguageArabic, "only.english"))
}

func TestBundle_TF(t *testing.T) {
	b := newTestBundle(t, "")
	assert.Equal(t, "Page 2 of 5", b.TF(domain.LanguageEnglish, "pagination.page", 2, 5))
	assert.Equal(t, "الصفحة 2 من 5", b.TF(domain.LanguageArabic, "pagination.page", 2, 5))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "a b {2}", Format("{0} {1} {2}", "a", "b"))
	assert.Equal(t, "no args {0}", Format("no args {0}"))
	assert.Equal(t, "x=1, x=1", Format("x={0}, x={0}", 1))
}

func TestOverridesMerge(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ar.json"), []byte(`{"nav.products": "منتجاتنا"}`), 0o644))
	b := newTestBundle(t, dir)

	assert.Equal(t, "منتجاتنا", b.T(domain.LanguageArabic, "nav.products"))
	assert.Equal(t, "الأخبار", b.T(domain.LanguageArabic, "nav.blog"))
}

func TestBrokenOverrideKeepsPreviousCatalog(t *testing.T) {
	dir := t.TempDir()
	b := newTestBundle(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{not json`), 0o644))

	assert.Error(t, b.Reload())
	assert.Equal(t, "Products", b.T(domain.LanguageEnglish, "nav.products"))

	_, err := NewBundle(dir, zap.NewNop())
	assert.Error(t, err)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, DirRTL, Direction(domain.LanguageArabic))
	assert.Equal(t, DirLTR, Direction(domain.LanguageEnglish))
	assert.Equal(t, DirLTR, Direction("fr"))
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		cookie   string
		accept   string
		fallback domain.Language
		want     domain.Language
	}{
		{"query wins", "ar", "en", "en-US", "en", "ar"},
		{"cookie beats header", "", "ar", "en-US,en;q=0.9", "en", "ar"},
		{"unknown query ignored", "fr", "ar", "", "en", "ar"},
		{"header regional arabic", "", "", "ar-EG,ar;q=0.9,en;q=0.8", "en", "ar"},
		{"header prefers english", "", "", "en-GB,ar;q=0.5", "ar", "en"},
		{"header unsupported uses fallback", "", "", "fr-FR,de;q=0.8", "ar", "ar"},
		{"garbage header", "", "", ";;;", "en", "en"},
		{"nothing", "", "", "", "ar", "ar"},
		{"bad fallback", "", "", "", "xx", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.query, tt.cookie, tt.accept, tt.fallback))
		})
	}
}

func TestWatcherReloadsOverrides(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	b := newTestBundle(t, dir)

	w, err := NewWatcher(b, zap.NewNop())
	require.NoError(t, err)
	w.debounce = 30 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"nav.products": "Our range"}`), 0o644))

	select {
	case <-w.reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("translations were not reloaded")
	}
	assert.Equal(t, "Our range", b.T(domain.LanguageEnglish, "nav.products"))
}

func TestNewWatcherRequiresDirectory(t *testing.T) {
	_, err := NewWatcher(newTestBundle(t, ""), zap.NewNop())
	assert.Error(t, err)
}
