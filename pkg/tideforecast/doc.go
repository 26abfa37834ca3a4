// Package tideforecast retrieves tide-table pages and reads low tides and sun
// times out of their markup. Pages are fetched concurrently per Location (see
// Fetcher) and each page is reduced to one RawDayRecord per calendar day (see
// Extract). All values are kept as the raw strings found on the page.
package tideforecast
