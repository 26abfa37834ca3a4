package tideforecast

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"
)

func TestLocationsDecode(t *testing.T) {
	var locs Locations
	err := locs.Decode(" Half Moon Bay, California | https://example.com/hmb ;Providence, Rhode Island|https://example.com/pvd;")
	require.NoError(t, err)
	require.Equal(t, Locations{
		{"Half Moon Bay, California", "https://example.com/hmb"},
		{"Providence, Rhode Island", "https://example.com/pvd"},
	}, locs)
	require.Equal(t, []string{"Half Moon Bay, California", "Providence, Rhode Island"}, locs.Names())
}

func TestLocationsDecodeErrors(t *testing.T) {
	for _, input := range []string{
		"",
		";;",
		"no url here",
		"|https://example.com/x",
		"Relative|/locations/x",
		"Twice|https://example.com/1;Twice|https://example.com/2",
	} {
		t.Run(input, func(t *testing.T) {
			var locs Locations
			require.Error(t, locs.Decode(input))
			require.Nil(t, locs)
		})
	}
}

func TestLocationsFromEnv(t *testing.T) {
	var cfg struct {
		Locations Locations
	}
	t.Setenv("TEST_LOCATIONS", "Somewhere|https://example.com/somewhere")

	require.NoError(t, envconfig.Process("test", &cfg))
	require.Equal(t, Locations{{"Somewhere", "https://example.com/somewhere"}}, cfg.Locations)
}

func TestDefaultLocationsValid(t *testing.T) {
	require.Len(t, DefaultLocations, 4)
	for _, loc := range DefaultLocations {
		require.NoError(t, loc.validate())
	}
}
