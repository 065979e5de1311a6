package escposdoc

import "strings"

// VariableBlockPlaceholder is the marked cell text that stands for an
// open-ended parameter list.
const VariableBlockPlaceholder = "[parameters]"

// CellKind classifies a single parameter-table cell.
type CellKind int

// CellKind constants.
const (
	CellEmpty CellKind = iota
	CellPrefix
	CellArgument
	CellPayload
	CellVariableBlock
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellPrefix:
		return "prefix"
	case CellArgument:
		return "argument"
	case CellPayload:
		return "payload"
	case CellVariableBlock:
		return "variable-block"
	default:
		return "unknown"
	}
}

// ClassifyCell classifies a cell by its text and whether it carries a
// parameter marker. Text is trimmed before classification.
func ClassifyCell(text string, marked bool) CellKind {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return CellEmpty
	case !marked:
		return CellPrefix
	case text == VariableBlockPlaceholder:
		return CellVariableBlock
	case strings.Contains(text, "..."):
		return CellPayload
	default:
		return CellArgument
	}
}
