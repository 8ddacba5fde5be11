// Package calendar serializes release events into an iCalendar feed.
package calendar

import (
	"fmt"
	"os"

	ics "github.com/arran4/golang-ical"
	"github.com/kinotools/kinostarts/internal/event"
)

const (
	CalendarName = "Deutsche Kinostarts"
	Timezone     = "Europe/Berlin"
	prodID       = "-//kinotools//kinostarts//DE"
)

// Generate builds the iCalendar text for a list of release events. Each film
// becomes an all-day event on its release date (exclusive end one day later).
// Event order follows the input; UIDs are content-derived, so identical input
// serializes to identical output.
func Generate(events []event.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName(CalendarName)
	cal.SetXWRTimezone(Timezone)

	// Occurrence counter per (date, title): the page lists a film once per
	// distribution category, and dupes still need distinct UIDs.
	seen := make(map[string]int)
	for _, evt := range events {
		key := evt.Date.Format("20060102") + "|" + evt.Title
		n := seen[key]
		seen[key]++

		e := cal.AddEvent(fmt.Sprintf("%s@insidekino.com", event.UID(evt, n)))
		// DTSTAMP is pinned to the release date so re-runs over unchanged
		// input stay byte-identical.
		e.SetDtStampTime(evt.Date)
		e.SetAllDayStartAt(evt.Date)
		e.SetAllDayEndAt(evt.Date.AddDate(0, 0, 1))
		e.SetSummary(evt.Title)
	}

	return cal.Serialize()
}

// Write serializes events and overwrites the file at path.
func Write(events []event.Event, path string) error {
	if err := os.WriteFile(path, []byte(Generate(events)), 0644); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}
	return nil
}
