package goquery

import (
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/escposdoc"
)

const titleSelector = "h1.Head-B"

// nameMatcher locates the command's descriptive name under the title.
var nameMatcher = cascadia.MustCompile("#body-contents > div > div:nth-child(3) > div > div > div")

var _ escposdoc.PageParser = (*Parser)(nil)

// Parser implements escposdoc.PageParser.
type Parser struct {
	functions bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithFunctions makes ParseCommand also group the parameter table into
// sub-functions by row label.
func WithFunctions() Option {
	return func(p *Parser) {
		p.functions = true
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseVersion extracts the reference revision from the version page.
func (p *Parser) ParseVersion(html string) (string, error) {
	return ParseVersion(html)
}

// ParseIndex parses the command listing page.
func (p *Parser) ParseIndex(html string) ([]escposdoc.IndexEntry, error) {
	return ParseIndex(html)
}

// ParseCommand parses a command detail page.
func (p *Parser) ParseCommand(html string) (*escposdoc.CommandDescription, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	title := cellText(doc.Find(titleSelector).First())
	if title == "" {
		return nil, escposdoc.Errorf(escposdoc.ESTRUCTURE, "unable to find the command title %q", titleSelector)
	}
	name := cellText(doc.FindMatcher(nameMatcher).First())
	if name == "" {
		return nil, escposdoc.Errorf(escposdoc.ESTRUCTURE, "unable to find the name of command %q", title)
	}

	format, err := parseFormat(doc.Selection)
	if err != nil {
		return nil, err
	}

	cmd := &escposdoc.CommandDescription{
		Title:  title,
		Name:   name,
		Format: format,
	}
	if p.functions {
		if cmd.Functions, err = parseFunctions(doc.Selection); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

// ParseCommand parses a command detail page with positional row mapping only.
func ParseCommand(html string) (*escposdoc.CommandDescription, error) {
	return NewParser().ParseCommand(html)
}
