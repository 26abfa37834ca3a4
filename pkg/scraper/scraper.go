// Package scraper runs the daylight low tide pipeline over a set of
// locations: fetch every page, read each one, keep the daylight low tides.
package scraper

import (
	"context"
	"fmt"

	"github.com/spencer-p/lowtides/pkg/daylight"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

// Result maps a location name to its daylight low tides in page order.
type Result map[string][]daylight.Event

// PageFetcher retrieves pages keyed by location name.
type PageFetcher interface {
	FetchAll(ctx context.Context, locs tideforecast.Locations) (map[string]string, error)
}

var _ PageFetcher = new(tideforecast.Fetcher)

// Scraper finds daylight low tides for Locations.
type Scraper struct {
	Locations tideforecast.Locations
	Fetcher   PageFetcher
}

func New(locs tideforecast.Locations, fetcher PageFetcher) *Scraper {
	return &Scraper{
		Locations: locs,
		Fetcher:   fetcher,
	}
}

// DaylightLowTides fetches all pages concurrently, then reads and filters them
// one at a time. Any failure spoils the whole result.
func (s *Scraper) DaylightLowTides(ctx context.Context) (Result, error) {
	pages, err := s.Fetcher.FetchAll(ctx, s.Locations)
	if err != nil {
		return nil, err
	}

	result := make(Result, len(s.Locations))
	for _, loc := range s.Locations {
		page, ok := pages[loc.Name]
		if !ok {
			return nil, fmt.Errorf("no page fetched for %s", loc.Name)
		}
		records, err := tideforecast.ExtractString(page)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", loc.Name, err)
		}
		events, err := daylight.Filter(records)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", loc.Name, err)
		}
		result[loc.Name] = events
	}
	return result, nil
}
