// Package crawl fetches element pages and turns each into a normalized
// element record. Pages are processed concurrently; a failed page is logged
// and skipped without stopping the run.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/periodicdata/core"
)

const defaultConcurrency = 4

// Handler receives each successfully normalized element.
// It may be called from several goroutines at once.
type Handler func(ctx context.Context, element core.Element) error

// Crawler runs the fetch, extract and normalize stages for a list of
// atomic numbers.
type Crawler struct {
	Fetcher     core.Fetcher
	Extractor   core.Extractor
	Normalizer  core.Normalizer
	BaseURL     string
	Concurrency int
	Logger      *log.Logger
}

// Summary counts the outcome of a run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Run processes every atomic number once, in order of first appearance,
// and hands each element to handle. Per-element failures are counted in
// the summary; only context cancellation is returned as an error.
func (c *Crawler) Run(ctx context.Context, numbers []int, handle Handler) (Summary, error) {
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	limit := c.Concurrency
	if limit < 1 {
		limit = defaultConcurrency
	}

	queue := NewQueue()
	for _, n := range numbers {
		queue.Add(n)
	}

	var succeeded, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for queue.HasNext() {
		if gctx.Err() != nil {
			break
		}
		n := queue.Next()
		g.Go(func() error {
			element, err := c.Element(gctx, n)
			if err == nil {
				err = handle(gctx, element)
			}
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				logger.Error("element failed", "number", n, "err", err)
				failed.Add(1)
				return nil
			}
			logger.Debug("element done", "number", n, "fields", len(element.Record))
			succeeded.Add(1)
			return nil
		})
	}

	err := g.Wait()
	summary := Summary{
		Total:     queue.Len(),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
	}
	if err == nil {
		err = ctx.Err()
	}
	return summary, err
}

// Element fetches and normalizes a single element page.
func (c *Crawler) Element(ctx context.Context, atomicNumber int) (core.Element, error) {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageURL := ElementURL(baseURL, atomicNumber)

	result, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return core.Element{}, fmt.Errorf("fetch: %w", err)
	}

	rows, err := c.Extractor.Extract(result.HTML)
	if err != nil {
		return core.Element{}, fmt.Errorf("extract: %w", err)
	}

	return core.Element{
		AtomicNumber: atomicNumber,
		Source:       pageURL,
		Record:       core.Collect(c.Normalizer, rows),
	}, nil
}
