// Package catalog drives the reference scrape: it loads pages through a
// PageLoader, parses them with a PageParser and hands every parsed command
// to an optional CommandWriter.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/escposdoc"
	"github.com/fwojciec/escposdoc/bloom"
)

// DefaultFalsePositiveRate sizes the duplicate-page filter.
const DefaultFalsePositiveRate = 1e-6

// Progress reports progress while parsing command pages.
type Progress struct {
	Page      string
	Completed int
	Total     int
	Skipped   bool
	Command   *escposdoc.CommandDescription
}

// ProgressFunc is called after each page is processed.
type ProgressFunc func(Progress)

// Scraper produces the command catalogue. Pages and Parser are required.
type Scraper struct {
	Pages  escposdoc.PageLoader
	Parser escposdoc.PageParser

	// Writer receives every parsed command when set.
	Writer escposdoc.CommandWriter

	// Logger defaults to discarding output.
	Logger *slog.Logger
}

// Version returns the reference revision.
func (s *Scraper) Version(ctx context.Context) (string, error) {
	html, err := s.Pages.Load(ctx, escposdoc.VersionPage)
	if err != nil {
		return "", err
	}
	return s.Parser.ParseVersion(html)
}

// Index returns the command index.
func (s *Scraper) Index(ctx context.Context) ([]escposdoc.IndexEntry, error) {
	html, err := s.Pages.Load(ctx, escposdoc.IndexPage)
	if err != nil {
		return nil, err
	}
	return s.Parser.ParseIndex(html)
}

// Command loads and parses one detail page.
func (s *Scraper) Command(ctx context.Context, page string) (*escposdoc.CommandDescription, error) {
	page = bloom.Page(page)
	html, err := s.Pages.Load(ctx, page)
	if err != nil {
		return nil, pageError(page, err)
	}
	cmd, err := s.Parser.ParseCommand(html)
	if err != nil {
		return nil, pageError(page, err)
	}
	return cmd, nil
}

// Commands parses the given detail pages in order. Pages already parsed in
// this call, ignoring fragments, are skipped. The first error stops the run.
func (s *Scraper) Commands(ctx context.Context, pages []string, progress ProgressFunc) ([]*escposdoc.CommandDescription, error) {
	logger := s.logger()
	seen := bloom.NewFilter(uint(len(pages)), DefaultFalsePositiveRate)
	cmds := make([]*escposdoc.CommandDescription, 0, len(pages))

	for i, ref := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := bloom.Page(ref)
		p := Progress{Page: page, Completed: i + 1, Total: len(pages)}

		if seen.Visit(page) {
			logger.Debug("skip duplicate page", "page", page)
			p.Skipped = true
			if progress != nil {
				progress(p)
			}
			continue
		}

		cmd, err := s.Command(ctx, page)
		if err != nil {
			return nil, err
		}
		logger.Info("parsed command",
			"page", page,
			"title", cmd.Title,
			"name", cmd.Name,
			"format", cmd.Format.String(),
			"functions", len(cmd.Functions),
		)

		if s.Writer != nil {
			if err := s.Writer.WriteCommand(ctx, page, cmd); err != nil {
				return nil, fmt.Errorf("write %s: %w", page, err)
			}
		}

		cmds = append(cmds, cmd)
		p.Command = cmd
		if progress != nil {
			progress(p)
		}
	}

	return cmds, nil
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// pageError prefixes an application error message with the page name.
func pageError(page string, err error) error {
	if escposdoc.ErrorCode(err) == escposdoc.EINTERNAL {
		return fmt.Errorf("%s: %w", page, err)
	}
	return escposdoc.Errorf(escposdoc.ErrorCode(err), "%s: %s", page, escposdoc.ErrorMessage(err))
}
