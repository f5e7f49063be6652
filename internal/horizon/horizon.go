// Package horizon converts a target date into a forecast horizon in months,
// counted from the last date with historical data.
package horizon

import (
	"fmt"
	"strings"
	"time"

	"github.com/ngmaloney/drought-terminal/internal/models"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"

	// DisplayLayout is how reference dates are shown to the user
	DisplayLayout = "02/01/2006"
)

// ParseDate parses "YYYY-MM-DD" or the "YYYY-MM" shorthand (day 1 of that month).
// The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(monthLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, models.NewSubmitError(models.InvalidDate, fmt.Sprintf("fecha inválida: %q", s))
}

// MonthsBetween parses both dates and returns the number of calendar months
// from reference to target.
func MonthsBetween(target, reference string) (int, error) {
	ref, err := ParseDate(reference)
	if err != nil {
		return 0, err
	}
	return MonthsAfter(target, ref)
}

// MonthsAfter returns (years*12 + months) between reference and target,
// ignoring the day of month. The target must be strictly after the reference
// and land in a later month.
func MonthsAfter(target string, reference time.Time) (int, error) {
	t, err := ParseDate(target)
	if err != nil {
		return 0, err
	}
	ref := midnightUTC(reference)

	months := (t.Year()-ref.Year())*12 + int(t.Month()) - int(ref.Month())
	if !t.After(ref) || months < 1 {
		return 0, models.NewSubmitError(models.NonFutureTarget, fmt.Sprintf(
			"la fecha objetivo (%s) debe ser posterior a la última fecha con datos (%s)",
			strings.TrimSpace(target), ref.Format(DisplayLayout)))
	}
	return months, nil
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
