package util

import (
	"regexp"
	"strings"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

var (
	reBlankRuns = regexp.MustCompile(`\n\s*\n\s*\n+`)
	reSpaceRuns = regexp.MustCompile(`[ \t]+`)
)

// CleanBlock normalizes multi-line scraped text: drops carriage returns,
// collapses runs of blank lines down to one blank line and squeezes
// horizontal whitespace, preserving paragraph breaks.
func CleanBlock(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	s = reSpaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Truncate clips s to max characters, appending a marker so downstream
// prompts know content was cut.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "\n\n[truncated]"
}
