package normalize

import (
	"math"
	"strings"
	"testing"
)

func TestClampDuration(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"below minimum", -10, 5},
		{"zero", 0, 5},
		{"at minimum", 5, 5},
		{"rounds down", 63.4, 63},
		{"rounds up", 89.5, 90},
		{"at maximum", 120, 120},
		{"above maximum", 500, 120},
		{"nan falls back to default", math.NaN(), 15},
		{"positive infinity falls back to default", math.Inf(1), 15},
		{"negative infinity falls back to default", math.Inf(-1), 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampDuration(tt.in); got != tt.want {
				t.Fatalf("ClampDuration(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampDurationIdentityInRange(t *testing.T) {
	for d := MinDurationMinutes; d <= MaxDurationMinutes; d++ {
		if got := ClampDuration(float64(d)); got != d {
			t.Fatalf("ClampDuration(%d) = %d, want identity", d, got)
		}
	}
}

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty content uses default", "", 15},
		{"whitespace only uses default", "   \n\t ", 15},
		{"ten words clamps to minimum", strings.Repeat("word ", 10), 5},
		{"fifty words", strings.Repeat("word ", 50), 15},
		{"thousand words clamps to maximum", strings.Repeat("word ", 1000), 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateDuration(tt.content); got != tt.want {
				t.Fatalf("EstimateDuration = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSummarizeContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
		{
			name:    "markdown markers only",
			content: "## --- ***",
			want:    "",
		},
		{
			name:    "plain text without sentence punctuation",
			content: "neural networks in a nutshell",
			want:    "neural networks in a nutshell",
		},
		{
			name:    "first two sentences",
			content: "First sentence. Second sentence! Third sentence?",
			want:    "First sentence. Second sentence",
		},
		{
			name:    "strips headings inline code and links",
			content: "# Heading\nSome `code` here. [Link](http://example.com) rules! Third sentence.",
			want:    "Heading Some here. Link rules",
		},
		{
			name:    "strips fenced code blocks",
			content: "Intro text.\n```go\nfunc main() {}\n```\nMore text follows here.",
			want:    "Intro text. More text follows here",
		},
		{
			name:    "collapses whitespace",
			content: "Spaced\t\tout   words.\n\nAcross lines.",
			want:    "Spaced out words. Across lines",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummarizeContent(tt.content); got != tt.want {
				t.Fatalf("SummarizeContent(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestSummarizeContentTruncation(t *testing.T) {
	// Two sentences that join to 302 characters must be cut to 277 + "...".
	content := strings.Repeat("a", 150) + ". " + strings.Repeat("b", 150) + "."
	got := SummarizeContent(content)
	if len([]rune(got)) != 280 {
		t.Fatalf("summary length = %d, want 280", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("summary %q does not end with ellipsis", got)
	}
}

func TestSummarizeContentWithinLimitUntouched(t *testing.T) {
	content := "Short and sweet. Nothing to cut here."
	got := SummarizeContent(content)
	if strings.HasSuffix(got, "...") {
		t.Fatalf("summary %q should not be truncated", got)
	}
	if got != "Short and sweet. Nothing to cut here" {
		t.Fatalf("unexpected summary %q", got)
	}
}
