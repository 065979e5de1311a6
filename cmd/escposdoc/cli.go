package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/escposdoc/catalog"
	eschttp "github.com/fwojciec/escposdoc/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper *catalog.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	CacheDir string        `name:"cache-dir" env:"ESCPOSDOC_CACHE" default:"cache" help:"Directory for cached reference pages"`
	BaseURL  string        `name:"base-url" env:"ESCPOSDOC_BASE_URL" default:"${base_url}" help:"Base URL of the command reference"`
	Timeout  time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Rate     float64       `default:"0" help:"Maximum requests per second (0 is unlimited)"`
	Verbose  bool          `short:"v" help:"Log cache reads and other debug detail"`

	Run     RunCmd     `cmd:"" help:"Print version and index, then parse every command"`
	Version VersionCmd `cmd:"" help:"Print the reference revision"`
	Index   IndexCmd   `cmd:"" help:"List the command index"`
	Parse   ParseCmd   `cmd:"" help:"Parse command detail pages"`
}

// Vars returns the interpolation variables used by CLI defaults.
func Vars() map[string]string {
	return map[string]string{"base_url": eschttp.DefaultBaseURL}
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Sample bool `short:"s" help:"Parse the built-in sample pages instead of the full index"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Pages     []string `arg:"" optional:"" help:"Detail pages to parse (default: every page in the index)"`
	Sample    bool     `short:"s" help:"Parse the built-in sample pages"`
	Functions bool     `short:"f" help:"Group parameter rows by function label"`
	CSV       string   `name:"csv" type:"path" help:"Write parsed commands to a CSV file"`
}

// samplePages are detail pages with known-irregular layouts.
var samplePages = []string{
	"esc_asterisk.html",
	"gs_cd.html",
	"lf.html",
	"esc_2.html",
	"esc_3.html",
	"dle_dc4_fn1.html",
	"gs_lparen_lk.html",
	"gs_lparen_lk_fn281.html",
}

// SamplePages returns a copy of the built-in sample page list.
func SamplePages() []string {
	return append([]string(nil), samplePages...)
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}
