package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/escposdoc"
)

// Ensure LoggingPageLoader implements escposdoc.PageLoader.
var _ escposdoc.PageLoader = (*LoggingPageLoader)(nil)

// LoggingPageLoader wraps a PageLoader with debug logging. The content
// digest lets an operator spot pages that changed between runs.
type LoggingPageLoader struct {
	next   escposdoc.PageLoader
	logger *slog.Logger
}

// NewLoggingPageLoader creates a new LoggingPageLoader.
func NewLoggingPageLoader(next escposdoc.PageLoader, logger *slog.Logger) *LoggingPageLoader {
	return &LoggingPageLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs size, digest and duration.
func (l *LoggingPageLoader) Load(ctx context.Context, name string) (html string, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("load page",
			"page", name,
			"bytes", len(html),
			"xxhash", strconv.FormatUint(xxhash.Sum64String(html), 16),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, name)
}
