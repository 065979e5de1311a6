package escposdoc

import "context"

// CommandWriter is an output sink for parsed commands.
type CommandWriter interface {
	// WriteCommand records the command parsed from the named page.
	WriteCommand(ctx context.Context, page string, cmd *CommandDescription) error

	// Close flushes buffered output.
	Close() error
}
