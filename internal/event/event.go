package event

import (
	"crypto/sha1"
	"fmt"
	"strconv"
	"time"
)

// Event represents one film release on a German cinema start date.
type Event struct {
	Date  time.Time `json:"date"`
	Title string    `json:"title"`
}

// UID creates a deterministic identifier for an event. The occurrence index
// disambiguates duplicate titles on the same date (the source page lists a
// film once per distribution category), so every VEVENT still gets a unique
// UID while re-runs over unchanged input produce identical calendars.
func UID(e Event, occurrence int) string {
	h := sha1.New()
	h.Write([]byte(e.Date.Format("20060102") + "|" + e.Title + "|" + strconv.Itoa(occurrence)))
	return fmt.Sprintf("%x", h.Sum(nil))
}
