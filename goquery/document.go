// Package goquery implements escposdoc.PageParser on top of goquery.
// Every parser is a pure function of the page content.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/escposdoc"
	xhtml "golang.org/x/net/html"
)

func newDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, escposdoc.Errorf(escposdoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// cellText returns the trimmed text of a selection. Non-breaking spaces
// used as spacers count as whitespace.
func cellText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

// outerHTML renders a selection for error messages.
func outerHTML(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		if err := xhtml.Render(&b, n); err != nil {
			break
		}
	}
	return strings.TrimSpace(b.String())
}
