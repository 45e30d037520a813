package normalize

import (
	"math"
	"regexp"
	"strings"
)

const (
	// DefaultDurationMinutes is used when a module has no duration hint and
	// no content to estimate from.
	DefaultDurationMinutes = 15
	// MinDurationMinutes and MaxDurationMinutes bound every module duration.
	MinDurationMinutes = 5
	MaxDurationMinutes = 120

	wordsPerReadingUnit = 200
	maxSummaryRunes     = 280
)

var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]*`")
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	markerRe     = regexp.MustCompile(`[>*#_-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// SummarizeContent derives a 1-2 sentence plain-text description from
// markdown-like module content. Code blocks are dropped, links unwrapped and
// markdown markers stripped before the first two sentences are taken. The
// result never exceeds 280 runes (277 + "...").
func SummarizeContent(content string) string {
	cleaned := fencedCodeRe.ReplaceAllString(content, " ")
	cleaned = inlineCodeRe.ReplaceAllString(cleaned, " ")
	cleaned = linkRe.ReplaceAllString(cleaned, "$1")
	cleaned = markerRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return ""
	}

	var sentences []string
	for _, s := range strings.FieldsFunc(cleaned, isSentenceEnd) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}

	summary := strings.Join(sentences, ". ")
	if runes := []rune(summary); len(runes) > maxSummaryRunes {
		summary = string(runes[:maxSummaryRunes-3]) + "..."
	}
	return summary
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// EstimateDuration estimates module minutes from the word count of its
// content. The (words / 200) * 60 formula is historical: existing module
// content was authored against it, so it must not be "corrected" to a plain
// reading-speed division.
func EstimateDuration(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return ClampDuration(DefaultDurationMinutes)
	}
	return ClampDuration(float64(words) / wordsPerReadingUnit * 60)
}

// ClampDuration rounds a candidate duration to the nearest integer and clamps
// it into [MinDurationMinutes, MaxDurationMinutes]. Non-finite input falls
// back to the default.
func ClampDuration(minutes float64) int {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		minutes = DefaultDurationMinutes
	}
	v := int(math.Round(minutes))
	if v < MinDurationMinutes {
		return MinDurationMinutes
	}
	if v > MaxDurationMinutes {
		return MaxDurationMinutes
	}
	return v
}
