package platform

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitization constants
const (
	SanitizedReplacement = '_'
	FallbackBaseName     = "video"
	MaxBaseNameBytes     = 200
)

// UnsafeFilenameChars are replaced even though some filesystems accept them
const UnsafeFilenameChars = `/\:*?"<>|`

// SanitizeFilename turns an arbitrary title into a filesystem-safe base name.
// Whitespace and unsafe characters become underscores, runs of underscores
// collapse, and leading/trailing dots and underscores are dropped.
func SanitizeFilename(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastWasReplacement := false
	for _, r := range title {
		if r == utf8.RuneError || unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(UnsafeFilenameChars, r) {
			r = SanitizedReplacement
		}
		if r == SanitizedReplacement {
			if lastWasReplacement {
				continue
			}
			lastWasReplacement = true
		} else {
			lastWasReplacement = false
		}
		b.WriteRune(r)
	}

	name := strings.Trim(b.String(), "_.")
	name = truncateBytes(name, MaxBaseNameBytes)
	if name == "" {
		return FallbackBaseName
	}
	return name
}

// truncateBytes shortens s to at most max bytes without splitting a rune
func truncateBytes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimRight(s[:cut], "_.")
}
