package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 120

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug reports whether s is a well-formed slug
func ValidSlug(s string) bool {
	return len(s) <= maxSlugLength && slugPattern.MatchString(s)
}

// Slugify derives a URL slug from a name. Accents are folded to ASCII, everything
// else outside [a-z0-9] becomes a single hyphen. Returns "" if nothing usable remains.
func Slugify(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return trimSlug(b.String(), maxSlugLength)
}

type slugExistsFunc func(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)

// resolveSlug validates an explicit slug or derives a unique one from name.
// Explicit slugs that are taken are a conflict. Derived slugs get a numeric suffix.
func resolveSlug(ctx context.Context, explicit, name string, excludeID *uuid.UUID, exists slugExistsFunc) (string, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		if !ValidSlug(explicit) {
			return "", ErrInvalidSlug
		}
		taken, err := exists(ctx, explicit, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			return "", ErrDuplicateSlug
		}
		return explicit, nil
	}

	base := Slugify(name)
	if base == "" {
		base = "item-" + uuid.NewString()[:8]
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		suffix := fmt.Sprintf("-%d", i)
		candidate = trimSlug(base, maxSlugLength-len(suffix)) + suffix
	}
}

// trimSlug cuts s to at most n bytes without leaving a trailing hyphen
func trimSlug(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimRight(s[:n], "-")
}
