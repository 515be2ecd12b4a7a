package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "crate.png", "crate.png"},
		{"windows path", `C:\Users\amira\Desktop\crate.png`, "crate.png"},
		{"unix path", "../../etc/crate.png", "crate.png"},
		{"empty", "   ", "upload"},
		{"dot", ".", "upload"},
		{"invalid utf8 only", "\xff\xfe", "upload"},
		{"invalid utf8 dropped", "tm\xffr.jpg", "tmr.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFileName(tt.in))
		})
	}
}

func TestSanitizeFileName_LongArabicNameKeepsRunesAndExtension(t *testing.T) {
	got := sanitizeFileName(strings.Repeat("ص", 129) + "ab.png")

	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), maxFileNameLength)
	assert.True(t, strings.HasPrefix(got, "صص"))
	assert.True(t, strings.HasSuffix(got, ".png"))
}

func TestSanitizeFileName_LongNameWithoutExtension(t *testing.T) {
	got := sanitizeFileName(strings.Repeat("é", 300))

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 127), got)
}
