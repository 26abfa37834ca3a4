package tideforecast

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Location is a named tide-table page.
type Location struct {
	Name string
	URL  string
}

// Locations is an ordered set of pages to scrape. The order is the order
// results are presented in.
type Locations []Location

var _ envconfig.Decoder = new(Locations)

// DefaultLocations are the pages scraped when nothing else is configured.
var DefaultLocations = Locations{
	{"Half Moon Bay, California", "https://www.tide-forecast.com/locations/Half-Moon-Bay-California/tides/latest"},
	{"Huntington Beach, California", "https://www.tide-forecast.com/locations/Huntington-Beach/tides/latest"},
	{"Providence, Rhode Island", "https://www.tide-forecast.com/locations/Providence-Rhode-Island/tides/latest"},
	{"Wrightsville Beach, North Carolina", "https://www.tide-forecast.com/locations/Wrightsville-Beach-North-Carolina/tides/latest"},
}

// Decode reads locations from "name|url;name|url". Names may contain commas,
// hence the unusual separators.
func (l *Locations) Decode(value string) error {
	var locs Locations
	seen := make(map[string]bool)
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, addr, ok := strings.Cut(entry, "|")
		if !ok {
			return fmt.Errorf("location %q not in fmt \"name|url\"", entry)
		}
		loc := Location{Name: strings.TrimSpace(name), URL: strings.TrimSpace(addr)}
		if err := loc.validate(); err != nil {
			return err
		}
		if seen[loc.Name] {
			return fmt.Errorf("location %q listed twice", loc.Name)
		}
		seen[loc.Name] = true
		locs = append(locs, loc)
	}
	if len(locs) == 0 {
		return fmt.Errorf("no locations in %q", value)
	}
	*l = locs
	return nil
}

func (loc Location) validate() error {
	if loc.Name == "" {
		return fmt.Errorf("location with url %q has no name", loc.URL)
	}
	u, err := url.Parse(loc.URL)
	if err != nil {
		return fmt.Errorf("location %q url: %w", loc.Name, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("location %q url %q is not absolute", loc.Name, loc.URL)
	}
	return nil
}

// Names lists the location names in order.
func (l Locations) Names() []string {
	names := make([]string, len(l))
	for i, loc := range l {
		names[i] = loc.Name
	}
	return names
}

// SunTimes holds a day's sunrise and sunset as written on the page. Either may
// be empty.
type SunTimes struct {
	Sunrise string
	Sunset  string
}

// RawDayRecord is one calendar day of a tide table. TideTimes, TideHeights and
// TideUnits are aligned by index.
type RawDayRecord struct {
	Date        string
	TideTimes   []string
	TideHeights []string
	TideUnits   []string
	Sun         SunTimes
}

func (r RawDayRecord) String() string {
	return fmt.Sprintf("{date: %s, lows: %v, sunrise: %q, sunset: %q}",
		r.Date, r.TideTimes, r.Sun.Sunrise, r.Sun.Sunset)
}

// FetchError reports a page that could not be retrieved, either because the
// transport failed (Err is set) or the server answered with a non-2xx status.
type FetchError struct {
	Location   string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s (%s): %v", e.Location, e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s (%s): http status %d", e.Location, e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParsingConsistencyError reports a page whose structure broke the assumption
// that each day has exactly one date header, one low tide row and one sun
// cell, or a low tide row whose times, heights and units do not line up.
type ParsingConsistencyError struct {
	Dates, Rows, SunCells int
	// Day is set when a single row is at fault.
	Day    string
	Detail string
}

func (e *ParsingConsistencyError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("parsing error on day %q: %s", e.Day, e.Detail)
	}
	return fmt.Sprintf("parsing error: %d date headers, %d low tide rows and %d sun cells",
		e.Dates, e.Rows, e.SunCells)
}
