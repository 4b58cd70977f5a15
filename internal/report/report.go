// File path: internal/report/report.go
package report

import (
	"regexp"
	"strings"
)

// cleaner strips markdown heading/emphasis markers and currency signs from
// the raw model output. Dollar signs inside amounts are removed too; the
// exported document shows bare numbers.
var cleaner = strings.NewReplacer("#", "", "$", "", "*", "")

// Clean removes every #, $ and * from the raw report text. Idempotent.
func Clean(raw string) string {
	return cleaner.Replace(raw)
}

var (
	boldStars       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderscores = regexp.MustCompile(`__(.*?)__`)
	italStars       = regexp.MustCompile(`\*(.*?)\*`)
	italUnderscores = regexp.MustCompile(`_(.*?)_`)
)

// RenderHTML reinterprets the constrained markdown subset the model emits
// for in-page display: newlines become line breaks, paired double markers
// become bold, paired single markers become italics.
//
// Clean runs before RenderHTML in the pipeline, so the asterisk patterns
// never match in practice; only underscore-delimited emphasis survives to
// this step. Callers must keep that ordering.
func RenderHTML(cleaned string) string {
	html := strings.ReplaceAll(cleaned, "\n", "<br>")
	html = boldStars.ReplaceAllString(html, "<strong>$1</strong>")
	html = boldUnderscores.ReplaceAllString(html, "<strong>$1</strong>")
	html = italStars.ReplaceAllString(html, "<em>$1</em>")
	html = italUnderscores.ReplaceAllString(html, "<em>$1</em>")
	return html
}
