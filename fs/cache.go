// Package fs provides a directory-backed page cache.
package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/escposdoc"
)

// Ensure PageCache implements escposdoc.PageLoader at compile time.
var _ escposdoc.PageLoader = (*PageCache)(nil)

// PageCache implements escposdoc.PageLoader by keeping every fetched page
// as a file named after the page. Entries never expire.
//
// A page is downloaded into a temporary file next to its entry and renamed
// into place only once the whole body has been read, so a failed fetch
// never leaves a partial entry behind. The cache is not safe for
// concurrent writers to the same key.
type PageCache struct {
	dir     string
	fetcher escposdoc.Fetcher
}

// NewPageCache creates a PageCache storing pages in dir and fetching
// missing pages with fetcher. The directory is created on first write.
func NewPageCache(dir string, fetcher escposdoc.Fetcher) *PageCache {
	return &PageCache{
		dir:     dir,
		fetcher: fetcher,
	}
}

// Dir returns the cache directory.
func (c *PageCache) Dir() string {
	return c.dir
}

// Load returns the named page, fetching and storing it if it is not cached.
func (c *PageCache) Load(ctx context.Context, name string) (string, error) {
	path, err := c.path(name)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(path)
	if err == nil {
		return string(b), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	return c.fetch(ctx, name, path)
}

// Contains reports whether the named page is cached.
func (c *PageCache) Contains(name string) bool {
	path, err := c.path(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func (c *PageCache) fetch(ctx context.Context, name, path string) (string, error) {
	body, err := c.fetcher.Fetch(ctx, name)
	if err != nil {
		return "", transportError(name, err)
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()

	var buf bytes.Buffer
	if _, err := io.Copy(tmp, io.TeeReader(body, &buf)); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return "", transportError(name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}

	return buf.String(), nil
}

func (c *PageCache) path(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", escposdoc.Errorf(escposdoc.EINVALID, "page name %q escapes the cache directory (path traversal)", name)
	}
	return filepath.Join(c.dir, name), nil
}

// transportError keeps the fetcher's error code when it has one.
func transportError(name string, err error) error {
	if code := escposdoc.ErrorCode(err); code != escposdoc.EINTERNAL {
		return err
	}
	return escposdoc.Errorf(escposdoc.ETRANSPORT, "fetch %s: %v", name, err)
}
