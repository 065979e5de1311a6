package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/escposdoc"
	"github.com/fwojciec/escposdoc/catalog"
	"github.com/fwojciec/escposdoc/csv"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) (err error) {
	if c.Sample && len(c.Pages) > 0 {
		return fmt.Errorf("--sample cannot be combined with explicit pages")
	}

	pages, err := c.pages(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", escposdoc.ErrorMessage(err))
		return err
	}

	scraper := *deps.Scraper
	if c.CSV != "" {
		f, ferr := os.Create(c.CSV)
		if ferr != nil {
			return fmt.Errorf("failed to create %s: %w", c.CSV, ferr)
		}
		w := csv.NewWriter(f)
		defer func() {
			if cerr := w.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("failed to close %s: %w", c.CSV, cerr)
			}
		}()
		scraper.Writer = w
	}

	progress := func(p catalog.Progress) {
		if p.Skipped {
			return
		}
		fmt.Fprintf(deps.Stdout, "%s - %s: %s\n", p.Command.Title, p.Command.Name, p.Command.Format)
		for _, fn := range p.Command.Functions {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", fn.Label, fn.Format)
		}
	}

	cmds, err := scraper.Commands(deps.Ctx, pages, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", escposdoc.ErrorMessage(err))
		return err
	}

	if c.CSV != "" {
		fmt.Fprintf(deps.Stderr, "Wrote %d commands to %s\n", len(cmds), c.CSV)
	}
	return nil
}

func (c *ParseCmd) pages(deps *Dependencies) ([]string, error) {
	if c.Sample {
		return SamplePages(), nil
	}
	if len(c.Pages) > 0 {
		return c.Pages, nil
	}
	entries, err := deps.Scraper.Index(deps.Ctx)
	if err != nil {
		return nil, err
	}
	return escposdoc.DetailReferences(entries), nil
}
