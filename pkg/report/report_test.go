package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/spencer-p/lowtides/pkg/scraper"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

var (
	testLocs = tideforecast.Locations{
		{Name: "Providence, Rhode Island", URL: "https://example.com/pvd"},
		{Name: "Half Moon Bay, California", URL: "https://example.com/hmb"},
		{Name: "Not In Result", URL: "https://example.com/none"},
	}
	testResult = scraper.Result{
		"Half Moon Bay, California": {
			{Date: "2021-06-14", Time: "1:15pm", Height: "-0.2 ft", Unit: "ft"},
			{Date: "2021-06-15", Time: "2:01pm", Height: "0.1 ft", Unit: "ft"},
		},
		"Providence, Rhode Island": {},
	}
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testLocs, testResult); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	out := buf.String()

	for _, want := range []string{"date", "time", "height", "unit", "Mon Jun 14", "1:15pm", "-0.2 ft", "Tue Jun 15", "2:01pm", "no daylight low tides"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}

	pvd := strings.Index(out, "Providence")
	hmb := strings.Index(out, "Half Moon Bay")
	if pvd < 0 || hmb < 0 || pvd > hmb {
		t.Errorf("places not in configured order:\n%s", out)
	}
	if strings.Contains(out, "Not In Result") {
		t.Errorf("printed a place without results:\n%s", out)
	}
}

func ExamplePlain() {
	var buf bytes.Buffer
	Plain(&buf, testLocs, testResult)
	fmt.Print(buf.String())
	// Output:
	// Providence, Rhode Island
	// Half Moon Bay, California
	// - 2021-06-14 at 1:15pm, -0.2 ft ft
	// - 2021-06-15 at 2:01pm, 0.1 ft ft
}
