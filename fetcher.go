package escposdoc

import (
	"context"
	"io"
)

// Fetcher retrieves raw reference pages by their name on the site.
type Fetcher interface {
	// Fetch requests the named page and returns its body.
	// The caller must close the body. Read errors on the body are
	// transport failures too.
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)

	// Close releases resources.
	Close() error
}

// PageLoader returns page content by name, from a local cache when possible.
type PageLoader interface {
	Load(ctx context.Context, name string) (string, error)
}
