package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spencer-p/lowtides/pkg/config"
	"github.com/spencer-p/lowtides/pkg/report"
	"github.com/spencer-p/lowtides/pkg/scraper"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

func main() {
	env, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad configuration: %v\n", err)
		os.Exit(1)
	}

	s := scraper.New(env.Locations, tideforecast.NewFetcher(env.Timeout))
	result, err := s.DaylightLowTides(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get daylight low tides: %v\n", err)
		os.Exit(1)
	}

	if err := report.Write(os.Stdout, env.Locations, result); err != nil {
		fmt.Fprintf(os.Stderr, "failed to print report: %v\n", err)
		os.Exit(1)
	}
}
