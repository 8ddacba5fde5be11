package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinotools/kinostarts/internal/event"
)

const (
	StartplanURL = "https://www.insidekino.com/DStarts/DStartplan.htm"
	UserAgent    = "kinostarts-cli/1.0 (github.com/kinotools/kinostarts)"
	Timeout      = 30 * time.Second

	// The InsideKino page marks date cells with this style class.
	dateCellClass = "auto-style68"
)

// Scraper handles fetching and parsing the InsideKino Startplan page
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper pointed at the live Startplan page
func New() *Scraper {
	return NewWithURL(StartplanURL)
}

// NewWithURL creates a Scraper for an alternate page location (e.g. a mirror)
func NewWithURL(url string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// FetchEvents fetches the Startplan page and returns all releases on or after
// today's calendar day, in document order.
func (s *Scraper) FetchEvents(today time.Time) ([]event.Event, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseEvents(resp.Body, today)
}

// parseEvents extracts events from HTML
func (s *Scraper) parseEvents(r io.Reader, today time.Time) ([]event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return harvest(extractRows(doc), today)
}

// releaseRow is one date cell paired with the title cells of the row that
// follows it. Cells are already reduced to trimmed text lines; everything
// past extractRows is DOM-free.
type releaseRow struct {
	dateText    string
	cells       [][]string
	hasTitleRow bool
}

// extractRows reduces the page to its date/title row pairs. This is the only
// place that knows the page's markup conventions.
func extractRows(doc *goquery.Document) []releaseRow {
	var rows []releaseRow
	doc.Find("td." + dateCellClass).Each(func(_ int, cell *goquery.Selection) {
		row := releaseRow{dateText: strings.TrimSpace(cell.Text())}

		titleRow := cell.Closest("tr").NextFiltered("tr")
		if titleRow.Length() > 0 {
			row.hasTitleRow = true
			titleRow.Find("td").Each(func(_ int, td *goquery.Selection) {
				row.cells = append(row.cells, cellLines(td))
			})
		}

		rows = append(rows, row)
	})
	return rows
}

// harvest interprets extracted rows against a reference date. Rows with
// malformed dates are skipped; a parseable upcoming date without a following
// title row means the page layout changed and is fatal.
func harvest(rows []releaseRow, today time.Time) ([]event.Event, error) {
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var events []event.Event
	for _, row := range rows {
		// Cheap filter: real date cells name one of the next ten years.
		if !containsUpcomingYear(row.dateText, today) {
			continue
		}

		date, err := event.ParseGermanDate(row.dateText)
		if err != nil {
			continue
		}

		if date.Before(dayStart) {
			continue
		}

		if !row.hasTitleRow {
			return nil, fmt.Errorf("no title row follows date cell %q: page layout changed?", row.dateText)
		}

		var titles []string
		for _, cell := range row.cells {
			titles = append(titles, parseTitles(cell)...)
		}

		for _, title := range mergeFragments(titles) {
			events = append(events, event.Event{Date: date, Title: title})
		}
	}
	return events, nil
}

// containsUpcomingYear reports whether text mentions any of the ten calendar
// years starting with today's.
func containsUpcomingYear(text string, today time.Time) bool {
	for year := today.Year(); year < today.Year()+10; year++ {
		if strings.Contains(text, strconv.Itoa(year)) {
			return true
		}
	}
	return false
}

// mergeFragments repairs titles split across markup boundaries, e.g.
// "Plattfuß am" followed by "Nil (CRC) WA". A fragment without a parenthesis
// that precedes one with a parenthesis is the front half of the same title.
func mergeFragments(titles []string) []string {
	merged := make([]string, 0, len(titles))
	for i := 0; i < len(titles); {
		if i+1 < len(titles) && !strings.Contains(titles[i], "(") && strings.Contains(titles[i+1], "(") {
			merged = append(merged, titles[i]+" "+titles[i+1])
			i += 2
		} else {
			merged = append(merged, titles[i])
			i++
		}
	}
	return merged
}
