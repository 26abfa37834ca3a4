// Package report prints daylight low tides per place.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/spencer-p/lowtides/pkg/daylight"
	"github.com/spencer-p/lowtides/pkg/scraper"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
	"github.com/spencer-p/lowtides/pkg/timetricks"
)

const ruleWidth = 30

var (
	placeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00BFFF"))
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A90E2"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// Write prints one block per location, in the order of locs, each with a table
// of its daylight low tides. Locations missing from result are skipped.
func Write(w io.Writer, locs tideforecast.Locations, result scraper.Result) error {
	var b strings.Builder
	for _, loc := range locs {
		events, ok := result[loc.Name]
		if !ok {
			continue
		}
		b.WriteString("\n")
		b.WriteString(placeStyle.Render(loc.Name))
		b.WriteString("\n")
		b.WriteString(ruleStyle.Render(strings.Repeat("-", ruleWidth)))
		b.WriteString("\n")
		b.WriteString(Table(events))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Table renders events as a date/time/height/unit table.
func Table(events []daylight.Event) string {
	if len(events) == 0 {
		return mutedStyle.Render("no daylight low tides")
	}

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{timetricks.PrettyDay(e.Date), e.Time, e.Height, e.Unit})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderRow(false).
		Headers("date", "time", "height", "unit").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

// Plain renders result without styling, one line per event. It is meant for
// clients that do not want box drawing.
func Plain(w io.Writer, locs tideforecast.Locations, result scraper.Result) error {
	for _, loc := range locs {
		events, ok := result[loc.Name]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", loc.Name); err != nil {
			return err
		}
		for _, e := range events {
			if _, err := fmt.Fprintf(w, "- %s\n", e.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
