package domain

import (
	"errors"
	"time"
)

// DayKeyLayout is the calendar-date form used for bucket keys and task dates.
const DayKeyLayout = "2006-01-02"

// ErrInvalidDayKey indicates a string that is not an ISO calendar date.
var ErrInvalidDayKey = errors.New("invalid day key, want YYYY-MM-DD")

// DayKey identifies a calendar day as a zero-padded ISO date string.
// Lexicographic comparison of day keys matches chronological order.
type DayKey string

// DayKeyOf truncates a time to its local calendar day.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(DayKeyLayout))
}

// ParseDayKey validates and returns a day key.
func ParseDayKey(s string) (DayKey, error) {
	if _, err := time.ParseInLocation(DayKeyLayout, s, time.Local); err != nil {
		return "", ErrInvalidDayKey
	}
	return DayKey(s), nil
}

// IsZero reports whether the key is absent.
func (k DayKey) IsZero() bool { return k == "" }

// Valid reports whether the key parses as a calendar date.
func (k DayKey) Valid() bool {
	_, err := time.ParseInLocation(DayKeyLayout, string(k), time.Local)
	return err == nil
}

// Time returns local midnight of the day.
func (k DayKey) Time() time.Time {
	t, _ := time.ParseInLocation(DayKeyLayout, string(k), time.Local)
	return t
}

// AddDays returns the key shifted by n calendar days.
func (k DayKey) AddDays(n int) DayKey {
	return DayKeyOf(k.Time().AddDate(0, 0, n))
}

// AddMonths returns the key shifted by n calendar months using native date
// normalization: Jan 31 plus one month rolls over into March rather than
// clamping to the end of February.
func (k DayKey) AddMonths(n int) DayKey {
	return DayKeyOf(k.Time().AddDate(0, n, 0))
}

func (k DayKey) String() string { return string(k) }
