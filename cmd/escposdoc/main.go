package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/escposdoc/catalog"
	escfs "github.com/fwojciec/escposdoc/fs"
	"github.com/fwojciec/escposdoc/goquery"
	eschttp "github.com/fwojciec/escposdoc/http"
	escslog "github.com/fwojciec/escposdoc/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used by the page cache. Set before calling Run() to avoid the network.
	Fetcher *eschttp.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("escposdoc"),
		kong.Description("Scrape the ESC/POS command reference into a command catalogue"),
		kong.Writers(stdout, stderr),
		kong.Vars(Vars()),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'escposdoc --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = eschttp.NewFetcher(
			eschttp.WithBaseURL(cli.BaseURL),
			eschttp.WithTimeout(cli.Timeout),
			eschttp.WithRateLimit(cli.Rate),
		)
	}
	defer fetcher.Close()

	cache := escfs.NewPageCache(cli.CacheDir, escslog.NewLoggingFetcher(fetcher, deps.Logger))

	var opts []goquery.Option
	if cli.Parse.Functions {
		opts = append(opts, goquery.WithFunctions())
	}

	deps.Scraper = &catalog.Scraper{
		Pages:  escslog.NewLoggingPageLoader(cache, deps.Logger),
		Parser: goquery.NewParser(opts...),
		Logger: deps.Logger,
	}

	return kongCtx.Run(deps)
}
