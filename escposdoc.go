// Package escposdoc provides a scraper for the ESC/POS command reference.
// It fetches the reference site's pages through a local page cache, parses
// the command index and each command's parameter table, and produces a
// structured catalogue of command encodings in ASCII, hex and decimal.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package escposdoc

// Well-known page names on the reference site.
const (
	// VersionPage carries the revision heading.
	VersionPage = "index.html"

	// IndexPage lists every command with a link to its detail page.
	IndexPage = "commands.html"
)
