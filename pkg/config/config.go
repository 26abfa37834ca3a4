// Package config reads settings from the environment, optionally seeded from
// a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

// Prefix is prepended to every variable name, e.g. LOWTIDES_PORT.
const Prefix = "lowtides"

type Config struct {
	Port   string `default:"8080"`
	Prefix string `default:"/"`
	// Timeout bounds each page fetch. Zero disables it.
	Timeout  time.Duration `default:"30s"`
	CacheTTL time.Duration `default:"1h" split_words:"true"`
	// Locations replaces the default set, as "name|url;name|url".
	Locations tideforecast.Locations
}

// Load reads a .env file if there is one, then the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		log.Printf("No env file loaded: %v", err)
	}

	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, err
	}
	if len(c.Locations) == 0 {
		c.Locations = tideforecast.DefaultLocations
	}
	if c.Timeout < 0 {
		return nil, fmt.Errorf("timeout %s cannot be negative", c.Timeout)
	}
	return &c, nil
}
