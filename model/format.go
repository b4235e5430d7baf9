package model

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberedLineRE = regexp.MustCompile(`(?m)^\d+\.\s(.*)$`)
	bulletLineRE   = regexp.MustCompile(`(?m)^(?:•\s|- )(.*)$`)
)

// FormatSummaryHTML turns the plain text layout the prompts ask for into a
// small HTML fragment: numbered lines become headings, bullet lines become
// list items and blank lines become spacers. The text is escaped first.
func FormatSummaryHTML(text string) string {
	out := html.EscapeString(strings.ReplaceAll(text, "\r\n", "\n"))
	out = numberedLineRE.ReplaceAllString(out, `<h4 class="summary-heading">$1</h4>`)
	out = bulletLineRE.ReplaceAllString(out, `<li class="summary-item">$1</li>`)
	return strings.ReplaceAll(out, "\n\n", `<div class="summary-break"></div>`)
}

// FormatCount renders n with comma thousands separators.
func FormatCount(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}

	var sb strings.Builder
	head := len(s) % 3
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
