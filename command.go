package escposdoc

import (
	"fmt"
	"strings"
)

// Notation is one of the three parallel representations of a command.
type Notation int

// Notation constants, in table order.
const (
	ASCII Notation = iota
	Hex
	Decimal
)

// Notations lists every notation in table order.
var Notations = []Notation{ASCII, Hex, Decimal}

func (n Notation) String() string {
	switch n {
	case ASCII:
		return "ASCII"
	case Hex:
		return "Hex"
	case Decimal:
		return "Decimal"
	default:
		return fmt.Sprintf("Notation(%d)", int(n))
	}
}

// ParseNotation matches a row label such as "ASCII", "Hex" or "Decimal",
// ignoring case and surrounding whitespace.
func ParseNotation(label string) (Notation, bool) {
	label = strings.TrimSpace(label)
	for _, n := range Notations {
		if strings.EqualFold(label, n.String()) {
			return n, true
		}
	}
	return 0, false
}

// NotationRow is the byte layout of a command in one notation.
type NotationRow struct {
	Prefix    []string `json:"prefix"`
	Arguments []string `json:"arguments"`
	Payload   []string `json:"payload"`

	// Parameters is set when the arguments are an open-ended parameter
	// block rather than fixed positions.
	Parameters bool `json:"parameters"`
}

// Add applies a classified cell to the row. Empty cells are ignored.
func (r *NotationRow) Add(kind CellKind, text string) {
	text = strings.TrimSpace(text)
	switch kind {
	case CellPrefix:
		r.Prefix = append(r.Prefix, text)
	case CellArgument:
		r.Arguments = append(r.Arguments, text)
	case CellPayload:
		r.Payload = append(r.Payload, text)
	case CellVariableBlock:
		r.Parameters = true
	}
}

// IsEmpty reports whether no cell was applied to the row.
func (r NotationRow) IsEmpty() bool {
	return len(r.Prefix) == 0 && len(r.Arguments) == 0 && len(r.Payload) == 0 && !r.Parameters
}

func (r NotationRow) String() string {
	return fmt.Sprintf("prefix=%v arguments=%v payload=%v parameters=%t",
		r.Prefix, r.Arguments, r.Payload, r.Parameters)
}

// CommandFormat describes the same byte sequence in all three notations.
type CommandFormat struct {
	ASCII   NotationRow `json:"ascii"`
	Hex     NotationRow `json:"hex"`
	Decimal NotationRow `json:"decimal"`
}

// Row returns a pointer to the row for the given notation.
func (f *CommandFormat) Row(n Notation) *NotationRow {
	switch n {
	case Hex:
		return &f.Hex
	case Decimal:
		return &f.Decimal
	default:
		return &f.ASCII
	}
}

// Parallel reports whether all three notations carry the same number of
// argument and payload placeholders. Parsing never enforces this.
func (f CommandFormat) Parallel() bool {
	return len(f.ASCII.Arguments) == len(f.Hex.Arguments) &&
		len(f.Hex.Arguments) == len(f.Decimal.Arguments) &&
		len(f.ASCII.Payload) == len(f.Hex.Payload) &&
		len(f.Hex.Payload) == len(f.Decimal.Payload)
}

// String renders the hex row, which is the most compact description of
// the encoding.
func (f CommandFormat) String() string {
	return f.Hex.String()
}

// FunctionFormat is the format of one sub-function on a multi-function page.
type FunctionFormat struct {
	// Label names the function (e.g. "Function A"). Empty for single-function pages.
	Label  string        `json:"label"`
	Format CommandFormat `json:"format"`
}

// CommandDescription is a fully parsed command detail page.
type CommandDescription struct {
	Title  string        `json:"title"`
	Name   string        `json:"name"`
	Format CommandFormat `json:"format"`

	// Functions is only populated when sub-function grouping is enabled.
	Functions []FunctionFormat `json:"functions,omitempty"`
}
