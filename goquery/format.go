package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/escposdoc"
)

const (
	parameterTableSelector = "table.parameter"

	// Placeholders are rendered as <font class="parameter">m</font>.
	// Fixed values use other classes (e.g. fix_param) and count as plain text.
	parameterMarkerSelector = "font.parameter, span.parameter"
)

// ParseFormat parses a command's parameter table into its three notations.
//
// Rows are mapped by position: the first three rows are ASCII, Hex and
// Decimal, whatever their labels say. Further rows, such as the other
// sub-functions of a multi-function page, are ignored; see ParseFunctions
// for label-based grouping.
func ParseFormat(html string) (escposdoc.CommandFormat, error) {
	doc, err := newDocument(html)
	if err != nil {
		return escposdoc.CommandFormat{}, err
	}
	return parseFormat(doc.Selection)
}

func parseFormat(root *goquery.Selection) (escposdoc.CommandFormat, error) {
	var f escposdoc.CommandFormat

	rows, err := parameterRows(root)
	if err != nil {
		return f, err
	}
	if rows.Length() < len(escposdoc.Notations) {
		return f, escposdoc.Errorf(escposdoc.ESTRUCTURE,
			"parameter table has %d rows, want one each for ASCII, Hex and Decimal", rows.Length())
	}

	for i, n := range escposdoc.Notations {
		row := f.Row(n)
		// The first column carries the row label.
		rows.Eq(i).ChildrenFiltered("td").Each(func(j int, cell *goquery.Selection) {
			if j == 0 {
				return
			}
			addCell(row, cell)
		})
	}
	return f, nil
}

func parameterRows(root *goquery.Selection) (*goquery.Selection, error) {
	tbl := root.Find(parameterTableSelector).First()
	if tbl.Length() == 0 {
		return nil, escposdoc.Errorf(escposdoc.ESTRUCTURE, "unable to find the parameter table")
	}
	rows := tbl.Find("tr")
	if rows.Length() == 0 {
		return nil, escposdoc.Errorf(escposdoc.ESTRUCTURE, "parameter table has no rows")
	}
	return rows, nil
}

func addCell(row *escposdoc.NotationRow, cell *goquery.Selection) {
	text := cellText(cell)
	row.Add(escposdoc.ClassifyCell(text, isMarked(cell)), text)
}

func isMarked(cell *goquery.Selection) bool {
	return cell.Find(parameterMarkerSelector).Length() > 0
}
