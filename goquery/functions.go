package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/escposdoc"
)

// functionLabelPattern matches sub-function headings such as "<Function A>".
var functionLabelPattern = regexp.MustCompile(`^<\s*(.+?)\s*>$`)

// ParseFunctions parses a parameter table by row label instead of position,
// grouping rows into one format per sub-function.
//
// A row's label cell is the first cell reading ASCII, Hex or Decimal; a
// "<Function X>" cell before it names the sub-function. Rows without a
// label cell, such as payload examples, are skipped. An ASCII row or a
// repeated notation starts the next group.
func ParseFunctions(html string) ([]escposdoc.FunctionFormat, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}
	return parseFunctions(doc.Selection)
}

func parseFunctions(root *goquery.Selection) ([]escposdoc.FunctionFormat, error) {
	rows, err := parameterRows(root)
	if err != nil {
		return nil, err
	}

	var (
		funcs  []escposdoc.FunctionFormat
		label  string
		filled map[escposdoc.Notation]bool
	)
	rows.Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("td")
		n, at, fn := findLabelCell(cells)
		if at < 0 {
			return
		}
		if fn != "" {
			label = fn
		}
		if len(funcs) == 0 || n == escposdoc.ASCII || filled[n] {
			funcs = append(funcs, escposdoc.FunctionFormat{Label: label})
			filled = make(map[escposdoc.Notation]bool, len(escposdoc.Notations))
		}
		filled[n] = true

		row := funcs[len(funcs)-1].Format.Row(n)
		cells.Each(func(j int, cell *goquery.Selection) {
			if j > at {
				addCell(row, cell)
			}
		})
	})

	if len(funcs) == 0 {
		return nil, escposdoc.Errorf(escposdoc.ESTRUCTURE, "parameter table has no ASCII, Hex or Decimal rows")
	}
	return funcs, nil
}

// findLabelCell returns the notation of a row, the index of its label cell
// and any function label preceding it. The index is -1 when the row has no
// label cell.
func findLabelCell(cells *goquery.Selection) (escposdoc.Notation, int, string) {
	var fn string
	for i := range cells.Nodes {
		text := cellText(cells.Eq(i))
		if n, ok := escposdoc.ParseNotation(text); ok {
			return n, i, fn
		}
		if m := functionLabelPattern.FindStringSubmatch(text); m != nil {
			fn = m[1]
		}
	}
	return 0, -1, ""
}
