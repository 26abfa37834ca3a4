package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/spencer-p/lowtides/pkg/daylight"
	"github.com/spencer-p/lowtides/pkg/scraper"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

const testPage = `<html><body><table>
<tr><th class="tide-table__day" data-date="2021-06-14">Mon</th></tr>
<tr><td class="tide-table__part--low"><span class="tide-table__value-low">1:15pm</span><span class="tide-table__height">-0.2 ft</span><span class="tide-table__units">ft</span></td>
<td class="tide-table__part tide-table__part--sun tide-table__part--last"><span>6:00am</span><span>7:30pm</span></td></tr>
</table></body></html>`

// countingFetcher serves the same page for every location and counts batches.
type countingFetcher struct {
	calls atomic.Int32
	err   error
}

func (f *countingFetcher) FetchAll(_ context.Context, locs tideforecast.Locations) (map[string]string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	pages := make(map[string]string)
	for _, loc := range locs {
		pages[loc.Name] = testPage
	}
	return pages, nil
}

func newTestRouter(f scraper.PageFetcher, ttl time.Duration) *mux.Router {
	locs := tideforecast.Locations{{Name: "Half Moon Bay, California", URL: "https://example.com/hmb"}}
	r := mux.NewRouter()
	Register(r, scraper.New(locs, f), ttl)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServeLowTidesJSON(t *testing.T) {
	r := newTestRouter(&countingFetcher{}, time.Hour)

	rec := get(t, r, "/api/v1/lowtides?o=json")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string][]daylight.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, map[string][]daylight.Event{
		"Half Moon Bay, California": {{Date: "2021-06-14", Time: "1:15pm", Height: "-0.2 ft", Unit: "ft"}},
	}, got)
}

func TestServeLowTidesText(t *testing.T) {
	r := newTestRouter(&countingFetcher{}, time.Hour)

	rec := get(t, r, "/api/v1/lowtides")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Half Moon Bay, California")
	require.Contains(t, rec.Body.String(), "1:15pm")

	rec = get(t, r, "/api/v1/lowtides?o=plain")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Half Moon Bay, California\n- 2021-06-14 at 1:15pm, -0.2 ft ft\n", rec.Body.String())
}

func TestServeLowTidesCached(t *testing.T) {
	f := &countingFetcher{}
	r := newTestRouter(f, time.Hour)

	first := get(t, r, "/api/v1/lowtides?o=json")
	second := get(t, r, "/api/v1/lowtides?o=json")
	require.Equal(t, first.Body.String(), second.Body.String())
	require.Equal(t, int32(1), f.calls.Load())

	get(t, r, "/api/v1/lowtides")
	require.Equal(t, int32(2), f.calls.Load(), "text output is cached separately")
}

func TestServeLowTidesError(t *testing.T) {
	f := &countingFetcher{err: errors.New("network down")}
	r := newTestRouter(f, time.Hour)

	rec := get(t, r, "/api/v1/lowtides")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "network down")

	// Failures are not cached.
	get(t, r, "/api/v1/lowtides")
	require.Equal(t, int32(2), f.calls.Load())
}

func TestIndex(t *testing.T) {
	r := newTestRouter(&countingFetcher{}, time.Hour)
	rec := get(t, r, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Half Moon Bay, California")
}
