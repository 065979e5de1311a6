// Package csv provides a CSV sink for parsed commands.
package csv

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/escposdoc"
)

// Ensure Writer implements escposdoc.CommandWriter at compile time.
var _ escposdoc.CommandWriter = (*Writer)(nil)

// Writer writes one CSV record per command. The header is written before
// the first record.
type Writer struct {
	w           *csv.Writer
	c           io.Closer
	wroteHeader bool
}

// NewWriter creates a Writer on w. If w is an io.Closer it is closed by Close.
func NewWriter(w io.Writer) *Writer {
	cw := &Writer{w: csv.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		cw.c = c
	}
	return cw
}

// Header returns the column names.
func Header() []string {
	cols := []string{"page", "title", "name"}
	for _, n := range escposdoc.Notations {
		prefix := strings.ToLower(n.String())
		cols = append(cols,
			prefix+"_prefix",
			prefix+"_arguments",
			prefix+"_payload",
			prefix+"_parameters",
		)
	}
	return cols
}

// Record returns the CSV record for a command. Token lists are joined
// with single spaces.
func Record(page string, cmd *escposdoc.CommandDescription) []string {
	rec := []string{page, cmd.Title, cmd.Name}
	for _, n := range escposdoc.Notations {
		row := cmd.Format.Row(n)
		rec = append(rec,
			strings.Join(row.Prefix, " "),
			strings.Join(row.Arguments, " "),
			strings.Join(row.Payload, " "),
			strconv.FormatBool(row.Parameters),
		)
	}
	return rec
}

// WriteCommand writes the command's record.
func (w *Writer) WriteCommand(ctx context.Context, page string, cmd *escposdoc.CommandDescription) error {
	if !w.wroteHeader {
		if err := w.w.Write(Header()); err != nil {
			return err
		}
		w.wroteHeader = true
	}
	if err := w.w.Write(Record(page, cmd)); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

// Close flushes buffered records and closes the underlying writer if it
// is closable.
func (w *Writer) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return err
	}
	if w.c != nil {
		return w.c.Close()
	}
	return nil
}
