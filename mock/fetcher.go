package mock

import (
	"context"
	"io"

	"github.com/fwojciec/escposdoc"
)

var _ escposdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of escposdoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, name string) (io.ReadCloser, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	return f.FetchFn(ctx, name)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ escposdoc.PageLoader = (*PageLoader)(nil)

// PageLoader is a mock implementation of escposdoc.PageLoader.
type PageLoader struct {
	LoadFn func(ctx context.Context, name string) (string, error)
}

func (l *PageLoader) Load(ctx context.Context, name string) (string, error) {
	return l.LoadFn(ctx, name)
}
