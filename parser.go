package escposdoc

// PageParser turns reference pages into catalogue records.
// Implementations are pure functions of the page content.
type PageParser interface {
	// ParseVersion extracts the revision from the version page.
	ParseVersion(html string) (string, error)

	// ParseIndex returns the command index in page order.
	ParseIndex(html string) ([]IndexEntry, error)

	// ParseCommand parses a command detail page.
	ParseCommand(html string) (*CommandDescription, error)
}
