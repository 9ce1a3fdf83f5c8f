package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanText turns a feed-provided string into plain text: markup and entities are resolved,
// invalid UTF-8 is dropped and runs of whitespace collapse to one space.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	if strings.ContainsAny(s, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			s = doc.Text()
		}
	}

	return strings.Join(strings.Fields(s), " ")
}
