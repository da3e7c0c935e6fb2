package output

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlToText converts HTML to plain text, collapsing whitespace. Some
// listings carry markup in their titles and descriptions; the preview
// should render them as text.
func htmlToText(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return cleanText(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return cleanText(html)
	}
	return cleanText(doc.Text())
}

// cleanText collapses runs of whitespace into single spaces and trims.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// clip shortens a cell for display, appending an ellipsis.
func clip(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen > 3 {
		return s[:maxLen-3] + "..."
	}
	return s[:maxLen]
}
