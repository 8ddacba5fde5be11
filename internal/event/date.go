package event

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseableDate is returned when a date cell's text does not follow the
// "D. Monat JJJJ" format. Callers treat it as a skippable row, not a failure.
var ErrUnparseableDate = errors.New("unparseable date")

// germanMonths maps German month names to month numbers, used for parsing
// date strings like "7. August 2025".
var germanMonths = map[string]time.Month{
	"Januar":    time.January,
	"Februar":   time.February,
	"März":      time.March,
	"April":     time.April,
	"Mai":       time.May,
	"Juni":      time.June,
	"Juli":      time.July,
	"August":    time.August,
	"September": time.September,
	"Oktober":   time.October,
	"November":  time.November,
	"Dezember":  time.December,
}

// ParseGermanDate converts a German date string into a time.Time at midnight
// UTC. Date strings on the source page can carry annotations in parentheses
// (e.g. "14. August 2025 (Mariä Himmelfahrt/Fr)"); everything from the first
// parenthesis on is ignored.
func ParseGermanDate(s string) (time.Time, error) {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)

	parts := strings.Fields(s)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q: want \"D. Monat JJJJ\"", ErrUnparseableDate, s)
	}

	day, err := strconv.Atoi(strings.TrimSuffix(parts[0], "."))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: bad day %q", ErrUnparseableDate, s, parts[0])
	}

	month, ok := germanMonths[parts[1]]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q: unknown month %q", ErrUnparseableDate, s, parts[1])
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: bad year %q", ErrUnparseableDate, s, parts[2])
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}
