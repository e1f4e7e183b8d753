package search

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes markup from a snippet, keeping only text content.
// Search APIs occasionally leak tags into abstracts and topic text even
// when asked for plain output.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return collapseWhitespace(s)
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(tokenizer.Text())
		}
	}
	return collapseWhitespace(b.String())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
