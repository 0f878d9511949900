package generator

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxDescriptionRunes = 400

// PlainText strips markup from a product description, collapses whitespace
// and truncates it to max runes.
func PlainText(s string, max int) string {
	text := s
	if strings.ContainsAny(s, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			text = doc.Text()
		}
	}
	text = strings.Join(strings.Fields(text), " ")
	if max > 0 {
		if r := []rune(text); len(r) > max {
			text = strings.TrimSpace(string(r[:max])) + "…"
		}
	}
	return text
}
