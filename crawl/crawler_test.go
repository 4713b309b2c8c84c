package crawl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/periodicdata/core"
	"github.com/gaurav-prasanna/periodicdata/core/extract"
	"github.com/gaurav-prasanna/periodicdata/core/normalize"
	"github.com/gaurav-prasanna/periodicdata/core/numeric"
)

type mapFetcher map[string]string

func (m mapFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	html, ok := m[url]
	if !ok {
		return nil, fmt.Errorf("no page for %s", url)
	}
	return &core.FetchResult{URL: url, StatusCode: 200, HTML: html}, nil
}

func elementPage(name string, number int) string {
	return fmt.Sprintf(`<html><body><table>
<tr><td><b>Overview</b></td></tr>
<tr><td>Name</td><td>%s</td></tr>
<tr><td>Atomic Number</td><td>%d</td></tr>
<tr><td>end</td></tr>
</table></body></html>`, name, number)
}

func newCrawler(pages mapFetcher) *Crawler {
	return &Crawler{
		Fetcher:     pages,
		Extractor:   extract.New(),
		Normalizer:  normalize.New(),
		BaseURL:     "http://test",
		Concurrency: 2,
		Logger:      log.New(io.Discard),
	}
}

func TestCrawler_Element(t *testing.T) {
	c := newCrawler(mapFetcher{
		"http://test/Elements/002/data.html": elementPage("Helium", 2),
	})

	element, err := c.Element(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, element.AtomicNumber)
	assert.Equal(t, "http://test/Elements/002/data.html", element.Source)
	assert.Equal(t, "Helium", element.Record["name"].Value)
	assert.Equal(t, numeric.Number(2), element.Record["atomicNumber"].Value)
}

func TestCrawler_Run(t *testing.T) {
	c := newCrawler(mapFetcher{
		"http://test/Elements/001/data.html": elementPage("Hydrogen", 1),
		"http://test/Elements/002/data.html": elementPage("Helium", 2),
		"http://test/Elements/004/data.html": elementPage("Beryllium", 4),
	})

	var mu sync.Mutex
	var got []int
	summary, err := c.Run(context.Background(), []int{1, 2, 3, 4}, func(_ context.Context, e core.Element) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.AtomicNumber)
		return nil
	})
	require.NoError(t, err)

	sort.Ints(got)
	assert.Equal(t, []int{1, 2, 4}, got)
	assert.Equal(t, Summary{Total: 4, Succeeded: 3, Failed: 1}, summary)
}

func TestCrawler_RunDeduplicates(t *testing.T) {
	c := newCrawler(mapFetcher{
		"http://test/Elements/001/data.html": elementPage("Hydrogen", 1),
		"http://test/Elements/002/data.html": elementPage("Helium", 2),
	})
	c.Concurrency = 1

	var got []int
	summary, err := c.Run(context.Background(), []int{2, 1, 2, 1}, func(_ context.Context, e core.Element) error {
		got = append(got, e.AtomicNumber)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, got)
	assert.Equal(t, Summary{Total: 2, Succeeded: 2}, summary)
}

func TestCrawler_RunHandlerError(t *testing.T) {
	c := newCrawler(mapFetcher{
		"http://test/Elements/001/data.html": elementPage("Hydrogen", 1),
	})

	summary, err := c.Run(context.Background(), []int{1}, func(context.Context, core.Element) error {
		return errors.New("disk full")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
}

func TestCrawler_RunCanceled(t *testing.T) {
	c := newCrawler(mapFetcher{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Run(ctx, []int{1, 2, 3}, func(context.Context, core.Element) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
