// Package daylight keeps the low tides that happen while the sun is up.
package daylight

import (
	"fmt"
	"strings"

	"github.com/spencer-p/lowtides/pkg/tideforecast"
	"github.com/spencer-p/lowtides/pkg/timetricks"
)

// Event is a low tide during daylight. Fields hold the strings found on the
// tide table.
type Event struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Height string `json:"height"`
	Unit   string `json:"unit"`
}

func (e Event) String() string {
	return fmt.Sprintf("%s at %s, %s %s", e.Date, e.Time, e.Height, e.Unit)
}

// Filter returns the tides of each record that fall between that day's
// sunrise and sunset, both included, in the order they were given. Days
// missing a sunrise or a sunset contribute nothing.
func Filter(records []tideforecast.RawDayRecord) ([]Event, error) {
	result := []Event{}
	for _, r := range records {
		events, err := filterDay(r)
		if err != nil {
			return nil, fmt.Errorf("day %s: %w", r.Date, err)
		}
		result = append(result, events...)
	}
	return result, nil
}

func filterDay(r tideforecast.RawDayRecord) ([]Event, error) {
	if strings.TrimSpace(r.Sun.Sunrise) == "" || strings.TrimSpace(r.Sun.Sunset) == "" {
		return nil, nil
	}
	sunrise, err := timetricks.ParseClock(r.Sun.Sunrise)
	if err != nil {
		return nil, fmt.Errorf("sunrise: %w", err)
	}
	sunset, err := timetricks.ParseClock(r.Sun.Sunset)
	if err != nil {
		return nil, fmt.Errorf("sunset: %w", err)
	}

	var events []Event
	for i, raw := range r.TideTimes {
		t, err := timetricks.ParseClock(raw)
		if err != nil {
			return nil, fmt.Errorf("low tide %d: %w", i, err)
		}
		if !t.Within(sunrise, sunset) {
			continue
		}
		events = append(events, Event{
			Date:   r.Date,
			Time:   raw,
			Height: at(r.TideHeights, i),
			Unit:   at(r.TideUnits, i),
		})
	}
	return events, nil
}

// at guards against records built by hand with short height or unit lists.
func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
