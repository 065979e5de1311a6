package main

import (
	"fmt"

	"github.com/fwojciec/escposdoc"
)

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	version, err := deps.Scraper.Version(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", escposdoc.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, version)
	return nil
}
