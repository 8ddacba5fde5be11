// Package scraper provides HTTP fetching and HTML parsing for the InsideKino
// German release-date table.
//
// The scraper fetches the public Startplan page and turns its date/title row
// pairs into events. The page's structural details (the style class marking
// date cells, titles living in the row immediately after each date row) are
// isolated in the row-extraction step so the rest of the pipeline never
// touches the DOM.
package scraper
