// Package cmd: fetch command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → normalize → render → write, one file per element.
package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/periodicdata/core"
	"github.com/gaurav-prasanna/periodicdata/core/extract"
	"github.com/gaurav-prasanna/periodicdata/core/fetch"
	"github.com/gaurav-prasanna/periodicdata/core/normalize"
	"github.com/gaurav-prasanna/periodicdata/core/output"
	"github.com/gaurav-prasanna/periodicdata/core/render"
	"github.com/gaurav-prasanna/periodicdata/crawl"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [numbers...]",
	Short: "Fetch element pages and write one normalized record per element",
	Long: `Fetch downloads the data page of each selected element, normalizes every
labeled row and writes <output_dir>/<NNN>.<ext>. With no numbers, all 118
elements are fetched. Numbers may be single values, ranges or lists.

Examples:
  periodicdata fetch
  periodicdata fetch 1-10 26,29 --output_dir ./data
  periodicdata fetch 8 --format markdown --rate 1`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	f := fetchCmd.Flags()
	f.String("format", "json", "Output format: json, markdown or pdf")
	f.String("output_dir", "", "Output directory (default: ./data)")
	f.Int("concurrency", 4, "Number of elements fetched in parallel")
	f.Float64("rate", 2, "Maximum requests per second (0 disables limiting)")
	f.String("base_url", crawl.DefaultBaseURL, "Site the element pages are fetched from")
	f.String("user_agent", "", "User-Agent header for requests")
	f.Bool("expand", false, "Split Discovery into discoveryYear and discoveryCountries")
}

func runFetch(cmd *cobra.Command, args []string) error {
	numbers, err := crawl.ParseNumbers(args...)
	if err != nil {
		return err
	}

	renderer, err := selectRenderer(cfg.Format)
	if err != nil {
		return err
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	crawler := &crawl.Crawler{
		Fetcher: fetch.New(
			fetch.WithRate(cfg.Rate, cfg.Burst),
			fetch.WithUserAgent(cfg.UserAgent),
		),
		Extractor:   extract.New(cfg.Sections...),
		Normalizer:  newNormalizer(cfg),
		BaseURL:     cfg.BaseURL,
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	}

	logger.Info("fetching elements", "count", len(numbers), "format", cfg.Format, "dir", writer.OutputDir)

	var outMu sync.Mutex
	out := cmd.OutOrStdout()

	summary, err := crawler.Run(cmd.Context(), numbers, func(_ context.Context, element core.Element) error {
		data, err := renderer.Render(element)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		path, err := writer.Write(element.AtomicNumber, data, renderer.Extension())
		if err != nil {
			return err
		}
		logger.Debug("written", "number", element.AtomicNumber, "path", path)

		outMu.Lock()
		defer outMu.Unlock()
		fmt.Fprintf(out, "✓ Written: %s\n", path)
		return nil
	})
	if err != nil {
		return err
	}

	if summary.Failed > 0 {
		logger.Warn("some elements failed", "failed", summary.Failed, "total", summary.Total)
	} else {
		logger.Info("done", "elements", summary.Succeeded)
	}
	return nil
}

// selectRenderer creates the Renderer for an output format name.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "json":
		return render.NewJSONRenderer(), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func newNormalizer(c Config) *normalize.Normalizer {
	var opts []normalize.Option
	if c.ExpandDiscovery {
		opts = append(opts, normalize.WithDiscoveryExpansion())
	}
	return normalize.New(opts...)
}
