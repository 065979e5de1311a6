package mock

import (
	"context"

	"github.com/fwojciec/escposdoc"
)

var _ escposdoc.CommandWriter = (*CommandWriter)(nil)

// CommandWriter is a mock implementation of escposdoc.CommandWriter.
type CommandWriter struct {
	WriteCommandFn func(ctx context.Context, page string, cmd *escposdoc.CommandDescription) error
	CloseFn        func() error
}

func (w *CommandWriter) WriteCommand(ctx context.Context, page string, cmd *escposdoc.CommandDescription) error {
	return w.WriteCommandFn(ctx, page, cmd)
}

func (w *CommandWriter) Close() error {
	return w.CloseFn()
}
