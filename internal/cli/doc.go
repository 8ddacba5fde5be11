// Package cli implements the command-line interface for kinostarts.
//
// The cli package provides the Cobra-based CLI that fetches the InsideKino
// release-date table, harvests upcoming film releases, and writes them to an
// iCalendar file. It coordinates the scraper, calendar, and event packages
// and prints a one-line summary on success.
package cli
