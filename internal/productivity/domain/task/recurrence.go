package task

import (
	"errors"
	"strings"

	"github.com/daybook-dev/daybook/internal/shared/domain"
)

var (
	ErrInvalidRecurrence = errors.New("unknown recurrence type")
	ErrInvalidInterval   = errors.New("recurrence interval must be positive")
)

// RecurrenceType enumerates how often a task repeats.
type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "NONE"
	RecurrenceDaily   RecurrenceType = "DAILY"
	RecurrenceWeekly  RecurrenceType = "WEEKLY"
	RecurrenceMonthly RecurrenceType = "MONTHLY"
)

// ParseRecurrenceType normalizes and validates a recurrence type string.
func ParseRecurrenceType(raw string) (RecurrenceType, error) {
	switch r := RecurrenceType(strings.ToUpper(strings.TrimSpace(raw))); r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return r, nil
	default:
		return "", ErrInvalidRecurrence
	}
}

// Recurrence is a repeat rule: every interval days/weeks/months.
type Recurrence struct {
	Type     RecurrenceType
	Interval int
}

// Validate checks the rule.
func (r Recurrence) Validate() error {
	if _, err := ParseRecurrenceType(string(r.Type)); err != nil {
		return err
	}
	if r.Type != RecurrenceNone && r.Interval < 1 {
		return ErrInvalidInterval
	}
	return nil
}

// Advance shifts a calendar date by one recurrence step. It reports false
// for an absent or invalid date or a non-repeating rule. Monthly advancement
// follows native date normalization: the day of month is preserved when it
// exists, and overflow rolls into the next month (Jan 31 plus one month lands
// in early March) rather than clamping to month-end.
func Advance(key domain.DayKey, r Recurrence) (domain.DayKey, bool) {
	if key.IsZero() || !key.Valid() {
		return "", false
	}
	interval := r.Interval
	if interval < 1 {
		interval = 1
	}
	switch r.Type {
	case RecurrenceDaily:
		return key.AddDays(interval), true
	case RecurrenceWeekly:
		return key.AddDays(7 * interval), true
	case RecurrenceMonthly:
		return key.AddMonths(interval), true
	default:
		return "", false
	}
}
