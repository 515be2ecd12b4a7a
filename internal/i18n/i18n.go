// Package i18n holds the translated interface strings of the public site.
//
// Catalogs are flat JSON objects keyed by message ID, one per language, embedded
// in the binary. An optional override directory with files of the same names is
// merged on top so copy can be edited without a rebuild.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/harvest-export/website/internal/domain"
	"go.uber.org/zap"
)

//go:embed locales/*.json
var locales embed.FS

// Direction values for the html dir attribute
const (
	DirLTR = "ltr"
	DirRTL = "rtl"
)

// Bundle looks up interface strings by language and key. Safe for concurrent use.
type Bundle struct {
	mu           sync.RWMutex
	catalogs     map[domain.Language]map[string]string
	overridesDir string
	logger       *zap.Logger
}

// NewBundle loads the embedded catalogs and, when overridesDir is set, the overrides in it
func NewBundle(overridesDir string, logger *zap.Logger) (*Bundle, error) {
	b := &Bundle{
		overridesDir: overridesDir,
		logger:       logger,
	}
	if err := b.Reload(); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload rebuilds every catalog from the embedded files and the override directory.
// On error the previous catalogs stay in place.
func (b *Bundle) Reload() error {
	catalogs := make(map[domain.Language]map[string]string, len(domain.SupportedLanguages))

	for _, lang := range domain.SupportedLanguages {
		raw, err := locales.ReadFile("locales/" + string(lang) + ".json")
		if err != nil {
			return fmt.Errorf("failed to read embedded catalog %s: %w", lang, err)
		}
		catalog, err := parseCatalog(raw)
		if err != nil {
			return fmt.Errorf("failed to parse embedded catalog %s: %w", lang, err)
		}

		if b.overridesDir != "" {
			overrides, err := readOverrides(b.overridesDir, lang)
			if err != nil {
				return err
			}
			for k, v := range overrides {
				catalog[k] = v
			}
		}
		catalogs[lang] = catalog
	}

	b.mu.Lock()
	b.catalogs = catalogs
	b.mu.Unlock()
	return nil
}

func readOverrides(dir string, lang domain.Language) (map[string]string, error) {
	path := filepath.Join(dir, string(lang)+".json")
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read override catalog %s: %w", path, err)
	}
	catalog, err := parseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse override catalog %s: %w", path, err)
	}
	return catalog, nil
}

func parseCatalog(raw []byte) (map[string]string, error) {
	catalog := make(map[string]string)
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// T returns the string for key in lang. Missing keys fall back to English, then to the key itself.
func (b *Bundle) T(lang domain.Language, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if v, ok := b.catalogs[lang][key]; ok {
		return v
	}
	if v, ok := b.catalogs[domain.LanguageEnglish][key]; ok {
		return v
	}
	return key
}

// TF is T with positional placeholders {0}, {1}, ... replaced by args
func (b *Bundle) TF(lang domain.Language, key string, args ...interface{}) string {
	return Format(b.T(lang, key), args...)
}

// Has reports whether lang defines key itself, without fallback
func (b *Bundle) Has(lang domain.Language, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.catalogs[lang][key]
	return ok
}

// Keys returns the sorted keys defined for lang
func (b *Bundle) Keys(lang domain.Language) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.catalogs[lang]))
	for k := range b.catalogs[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OverridesDir returns the directory overrides are read from, or ""
func (b *Bundle) OverridesDir() string {
	return b.overridesDir
}

// Format replaces {0}, {1}, ... in s with args. Unknown placeholders are left as is.
func Format(s string, args ...interface{}) string {
	if len(args) == 0 || !strings.Contains(s, "{") {
		return s
	}
	pairs := make([]string, 0, len(args)*2)
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Direction returns the text direction for lang
func Direction(lang domain.Language) string {
	if lang.IsRTL() {
		return DirRTL
	}
	return DirLTR
}
