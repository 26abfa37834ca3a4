package tideforecast

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spencer-p/lowtides/pkg/metrics"
)

// Fetcher retrieves tide-table pages.
type Fetcher struct {
	// Client is used for every request in a batch. When nil, each batch gets
	// its own client and connection pool.
	Client *http.Client
	// Timeout bounds each request of a batch when Client is nil. Zero means
	// no limit.
	Timeout time.Duration
}

// NewFetcher creates a Fetcher whose requests give up after timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{Timeout: timeout}
}

// FetchAll requests every location at once and returns each page body keyed by
// location name once all of them have arrived. The first failure aborts the
// batch: the other requests are cancelled and nothing is returned.
func (f *Fetcher) FetchAll(ctx context.Context, locs Locations) (map[string]string, error) {
	seen := make(map[string]bool, len(locs))
	for _, loc := range locs {
		if seen[loc.Name] {
			return nil, fmt.Errorf("location %q listed twice", loc.Name)
		}
		seen[loc.Name] = true
	}

	client := f.client()
	// The pool lives as long as the batch.
	defer client.CloseIdleConnections()

	pages := make([]string, len(locs))
	g, ctx := errgroup.WithContext(ctx)
	for i, loc := range locs {
		i, loc := i, loc
		g.Go(func() error {
			page, err := fetch(ctx, client, loc)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(map[string]string, len(locs))
	for i, loc := range locs {
		result[loc.Name] = pages[i]
	}
	return result, nil
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
		Timeout:   f.Timeout,
	}
}

func fetch(ctx context.Context, client *http.Client, loc Location) (string, error) {
	start := time.Now()
	fail := func(code int, err error) (string, error) {
		label := "error"
		if code != 0 {
			label = strconv.Itoa(code)
		}
		metrics.ObserveFetchLatency(loc.Name, label, time.Since(start).Seconds())
		return "", &FetchError{Location: loc.Name, URL: loc.URL, StatusCode: code, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc.URL, nil)
	if err != nil {
		return fail(0, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fail(resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("failed to read body: %w", err))
	}

	latency := time.Since(start)
	metrics.ObserveFetchLatency(loc.Name, strconv.Itoa(resp.StatusCode), latency.Seconds())
	log.Printf("Fetched %s (%d bytes) in %s", loc.Name, len(body), latency)
	return string(body), nil
}
