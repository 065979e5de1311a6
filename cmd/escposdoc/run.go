package main

import (
	"fmt"

	"github.com/fwojciec/escposdoc"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	logger := deps.logger()

	version, err := deps.Scraper.Version(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", escposdoc.ErrorMessage(err))
		return err
	}
	logger.Info("reference version", "version", version)

	entries, err := deps.Scraper.Index(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", escposdoc.ErrorMessage(err))
		return err
	}
	logger.Info("found commands", "count", len(entries))
	printIndex(deps.Stdout, entries)

	pages := escposdoc.DetailReferences(entries)
	if c.Sample {
		pages = SamplePages()
	}

	logger.Info("parsing commands", "pages", len(pages))
	if _, err := deps.Scraper.Commands(deps.Ctx, pages, nil); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", escposdoc.ErrorMessage(err))
		return err
	}
	return nil
}
