package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/escposdoc"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	entries, err := deps.Scraper.Index(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", escposdoc.ErrorMessage(err))
		return err
	}
	printIndex(deps.Stdout, entries)
	return nil
}

func printIndex(w io.Writer, entries []escposdoc.IndexEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%-15s - %s (%s)\n", e.Code, e.Name, e.DetailReference)
	}
}
