package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/escposdoc"
)

// indexColumns is code-with-link, name and category.
const indexColumns = 3

// ParseIndex parses the command listing page into index entries in page order.
//
// The entry rows look like this:
//
//	<tr>
//	<td align="left" nowrap=""><a href="esc_lr.html">ESC r</a></td>
//	<td align="left">Select print color</td>
//	<td align="left" nowrap="">Character</td>
//	</tr>
func ParseIndex(html string) ([]escposdoc.IndexEntry, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	tbl := doc.Find("table").First()
	if tbl.Length() == 0 {
		return nil, escposdoc.Errorf(escposdoc.ESTRUCTURE, "unable to find the index table")
	}
	body := tbl.ChildrenFiltered("tbody").First()
	if body.Length() == 0 {
		return nil, escposdoc.Errorf(escposdoc.ESTRUCTURE, "index table has no body")
	}

	rows := body.ChildrenFiltered("tr")
	entries := make([]escposdoc.IndexEntry, 0, rows.Length())
	for i := range rows.Nodes {
		entry, err := parseIndexRow(i+1, rows.Eq(i))
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseIndexRow(num int, row *goquery.Selection) (escposdoc.IndexEntry, error) {
	cols := row.ChildrenFiltered("td")
	if cols.Length() != indexColumns {
		return escposdoc.IndexEntry{}, escposdoc.Errorf(escposdoc.ESTRUCTURE,
			"index row %d: expected %d columns, got %d: %s", num, indexColumns, cols.Length(), outerHTML(row))
	}

	code := cols.Eq(0)
	href, ok := code.Find("a[href]").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return escposdoc.IndexEntry{}, escposdoc.Errorf(escposdoc.ESTRUCTURE,
			"index row %d: missing detail link: %s", num, outerHTML(row))
	}

	return escposdoc.IndexEntry{
		Code:            cellText(code),
		Name:            joinLines(cols.Eq(1).Text()),
		DetailReference: strings.TrimSpace(href),
	}, nil
}

// joinLines collapses source formatting inside a cell: each line is
// trimmed, blank lines are dropped and the rest are joined with spaces.
func joinLines(text string) string {
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " ")
}
