package linklist

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChars  = regexp.MustCompile(`[^\w-]+`)
	hyphenRun     = regexp.MustCompile(`--+`)
)

// GenerateSlug derives a URL-safe slug from free text: lower-cased, trimmed,
// whitespace runs collapsed to single hyphens, characters outside the
// word-and-hyphen class stripped, repeated hyphens collapsed. Deterministic
// and pure; uniqueness is enforced at creation time, not here.
func GenerateSlug(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")

	return hyphenRun.ReplaceAllString(slug, "-")
}
