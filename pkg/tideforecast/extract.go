package tideforecast

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Markers locating the pieces of a tide table.
const (
	dateSelector    = "th.tide-table__day"
	dateAttr        = "data-date"
	lowRowSelector  = "td.tide-table__part--low"
	lowTimeSelector = "span.tide-table__value-low"
	heightSelector  = "span.tide-table__height"
	unitSelector    = "span.tide-table__units"
	sunSelector     = "td.tide-table__part--sun.tide-table__part--last"
)

// day collects the parts of one calendar day as they are met in the
// document.
type day struct {
	date    string
	hasDate bool
	lows    lowTides
	sun     SunTimes
}

type lowTides struct {
	times, heights, units []string
}

// ExtractString is Extract over an in-memory page.
func ExtractString(page string) ([]RawDayRecord, error) {
	return Extract(strings.NewReader(page))
}

// Extract reads one RawDayRecord per day out of a tide-table page.
//
// The page is walked once in document order. The i-th date header, the i-th
// low tide row and the i-th sun cell make up day i. Headers without a date
// are dropped along with the row and cell paired with them.
func Extract(r io.Reader) ([]RawDayRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	var (
		days                 []day
		nDates, nRows, nSuns int
		walkErr              error
	)
	slot := func(i int) *day {
		for len(days) <= i {
			days = append(days, day{})
		}
		return &days[i]
	}

	all := strings.Join([]string{dateSelector, lowRowSelector, sunSelector}, ", ")
	doc.Find(all).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		switch {
		case s.Is(dateSelector):
			d := slot(nDates)
			d.date, d.hasDate = s.Attr(dateAttr)
			nDates++
		case s.Is(lowRowSelector):
			d := slot(nRows)
			d.lows = readLowTides(s)
			nRows++
			if err := d.lows.check(); err != nil {
				walkErr = &ParsingConsistencyError{Day: d.date, Detail: err.Error()}
				return false
			}
		case s.Is(sunSelector):
			slot(nSuns).sun = readSun(s)
			nSuns++
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if nDates != nRows || nRows != nSuns {
		return nil, &ParsingConsistencyError{Dates: nDates, Rows: nRows, SunCells: nSuns}
	}

	records := make([]RawDayRecord, 0, len(days))
	for _, d := range days {
		if !d.hasDate {
			continue
		}
		records = append(records, RawDayRecord{
			Date:        d.date,
			TideTimes:   d.lows.times,
			TideHeights: d.lows.heights,
			TideUnits:   d.lows.units,
			Sun:         d.sun,
		})
	}
	return records, nil
}

func readLowTides(row *goquery.Selection) lowTides {
	return lowTides{
		times:   texts(row.Find(lowTimeSelector)),
		heights: texts(row.Find(heightSelector)),
		units:   texts(row.Find(unitSelector)),
	}
}

func (l lowTides) check() error {
	if len(l.times) != len(l.heights) || len(l.times) != len(l.units) {
		return fmt.Errorf("%d low tide times, %d heights and %d units",
			len(l.times), len(l.heights), len(l.units))
	}
	return nil
}

// readSun takes the sunrise from the first child of the cell and the sunset
// from the one after it. Whitespace between tags is not a child.
func readSun(cell *goquery.Selection) SunTimes {
	children := cell.Contents().FilterFunction(func(_ int, s *goquery.Selection) bool {
		n := s.Get(0)
		switch n.Type {
		case html.ElementNode:
			return true
		case html.TextNode:
			return strings.TrimSpace(n.Data) != ""
		}
		return false
	})

	var sun SunTimes
	if children.Length() > 0 {
		sun.Sunrise = strings.TrimSpace(children.Eq(0).Text())
	}
	if children.Length() > 1 {
		sun.Sunset = strings.TrimSpace(children.Eq(1).Text())
	}
	return sun
}

func texts(s *goquery.Selection) []string {
	out := make([]string, 0, s.Length())
	s.Each(func(_ int, el *goquery.Selection) {
		out = append(out, strings.TrimSpace(el.Text()))
	})
	return out
}
