package timetricks

import (
	"fmt"
	"strings"
	"time"
)

const (
	clockFormat = "3:04PM"
	dayFormat   = "2006-01-02"
)

// Clock is a time of day in minutes since midnight. It carries no date, so two
// clocks compare with the usual operators.
type Clock int

// ParseClock reads a 12-hour clock string such as "6:00am" or "11:58 PM".
// Tide tables write the twelve o'clock hour as "00", which is rewritten to "12"
// before parsing.
func ParseClock(raw string) (Clock, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "00") {
		s = "12" + s[2:]
	}
	s = strings.ToUpper(strings.Replace(s, " ", "", 1))

	t, err := time.Parse(clockFormat, s)
	if err != nil {
		return 0, &TimeFormatError{Value: raw, Err: err}
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

// MustParseClock is like ParseClock but panics on malformed input. Meant for
// tests and constants.
func MustParseClock(raw string) Clock {
	c, err := ParseClock(raw)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// Within reports whether c falls in [start, end], bounds included.
func (c Clock) Within(start, end Clock) bool {
	return start <= c && c <= end
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// TimeFormatError is returned when a clock string cannot be parsed.
type TimeFormatError struct {
	Value string
	Err   error
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("time %q not in fmt %q: %v", e.Value, clockFormat, e.Err)
}

func (e *TimeFormatError) Unwrap() error {
	return e.Err
}

// ParseDay reads the machine date a tide table attaches to each day.
func ParseDay(raw string) (time.Time, error) {
	return time.Parse(dayFormat, strings.TrimSpace(raw))
}

// PrettyDay renders a tide table date like "Mon Jan 02". Dates that do not
// parse are returned untouched.
func PrettyDay(raw string) string {
	t, err := ParseDay(raw)
	if err != nil {
		return raw
	}
	return t.Format("Mon Jan 02")
}
