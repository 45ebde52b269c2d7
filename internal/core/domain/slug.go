package domain

import (
	"regexp"
	"strings"
)

const (
	slugMinLen = 3
	slugMaxLen = 50
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
	nonWordChars   = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns  = regexp.MustCompile(`[\s_-]+`)
	keywordSplitRe = regexp.MustCompile(`[\s,.]+`)
)

// Slugify derives a URL-safe slug from a free-form title: lowercase, strip
// punctuation, collapse whitespace/underscore runs into single hyphens, trim
// leading and trailing hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonWordChars.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidateSlug checks the published-slug invariant: lowercase letters, digits
// and hyphens only, length 3-50.
func ValidateSlug(slug string) error {
	if len(slug) < slugMinLen || len(slug) > slugMaxLen {
		return ErrInvalidSlug
	}
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}
	return nil
}

// maxKeywords caps ExtractKeywords output.
const maxKeywords = 10

// ExtractKeywords pulls candidate keywords out of free text, e.g. a job
// description used to tailor a portfolio: lowercase, split on whitespace,
// commas and periods, keep words longer than 3 characters, first 10.
func ExtractKeywords(text string) []string {
	words := keywordSplitRe.Split(strings.ToLower(text), -1)
	keywords := make([]string, 0, maxKeywords)
	for _, w := range words {
		if len(w) <= 3 {
			continue
		}
		keywords = append(keywords, w)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
