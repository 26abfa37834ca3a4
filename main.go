package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/spencer-p/lowtides/pkg/config"
	"github.com/spencer-p/lowtides/pkg/handlers"
	"github.com/spencer-p/lowtides/pkg/scraper"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := scraper.New(env.Locations, tideforecast.NewFetcher(env.Timeout))

	r := mux.NewRouter().StrictSlash(true)
	sub := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(sub, s, env.CacheTTL)

	// Writes wait on a full batch of page fetches.
	srv := &http.Server{
		Handler:      r,
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: env.Timeout + 15*time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Printf("Serving low tides for %d places", len(env.Locations))
	log.Printf("Listening and serving on %s%s", srv.Addr, env.Prefix)
	log.Fatal(srv.ListenAndServe())
}
