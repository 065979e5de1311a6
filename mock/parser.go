package mock

import "github.com/fwojciec/escposdoc"

var _ escposdoc.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of escposdoc.PageParser.
type PageParser struct {
	ParseVersionFn func(html string) (string, error)
	ParseIndexFn   func(html string) ([]escposdoc.IndexEntry, error)
	ParseCommandFn func(html string) (*escposdoc.CommandDescription, error)
}

func (p *PageParser) ParseVersion(html string) (string, error) {
	return p.ParseVersionFn(html)
}

func (p *PageParser) ParseIndex(html string) ([]escposdoc.IndexEntry, error) {
	return p.ParseIndexFn(html)
}

func (p *PageParser) ParseCommand(html string) (*escposdoc.CommandDescription, error) {
	return p.ParseCommandFn(html)
}
