package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/spencer-p/lowtides/pkg/cache"
	"github.com/spencer-p/lowtides/pkg/metrics"
	"github.com/spencer-p/lowtides/pkg/report"
	"github.com/spencer-p/lowtides/pkg/scraper"
)

// Register adds the low tide routes to r. Results are cached for ttl.
func Register(r *mux.Router, s *scraper.Scraper, ttl time.Duration) {
	r.Use(metrics.LatencyHandler)
	r.Handle("/", makeIndexHandler(s))
	r.Handle("/api/v1/lowtides", makeServeLowTides(s, ttl)).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler())
}

func makeServeLowTides(s *scraper.Scraper, ttl time.Duration) http.Handler {
	pageCache := cache.NewTimed(ttl)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		outputFormat := r.FormValue("o")
		contentType := "text/plain; charset=utf-8"
		if outputFormat == "json" {
			contentType = "application/json"
		}

		// cache based on the output format, the only thing a query can vary
		key := fmt.Sprintf("%s %s", r.Method, outputFormat)

		// serve cache version from memory if possible
		if cached, ok := pageCache.Get(key); ok {
			w.Header().Add("Content-Type", contentType)
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		log.Println("No cache data")

		result, err := s.DaylightLowTides(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "Failed to get data: %+v", err)
			log.Printf("Failed to get data: %+v", err)
			return
		}

		// duplicate the http response onto a buffer for the cache
		var toCache bytes.Buffer
		mw := io.MultiWriter(w, &toCache)

		w.Header().Add("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		switch outputFormat {
		case "json":
			err = json.NewEncoder(mw).Encode(result)
		case "plain":
			err = report.Plain(mw, s.Locations, result)
		default:
			err = report.Write(mw, s.Locations, result)
		}
		if err != nil {
			log.Printf("Failed to write result: %+v", err)
			return
		}

		pageCache.Set(key, toCache.Bytes())
	})
}

func makeIndexHandler(s *scraper.Scraper) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "daylight low tides for %d places\n", len(s.Locations))
		for _, name := range s.Locations.Names() {
			fmt.Fprintf(w, "  %s\n", name)
		}
		fmt.Fprintf(w, "\nGET api/v1/lowtides[?o=json|plain]\n")
	})
}
