// Package event provides types and functions for German cinema release events.
//
// The event package handles event representation, German date parsing, and
// identification. Each event is assigned a deterministic SHA1-based UID
// generated from its release date and title, so regenerating the calendar
// from unchanged source data produces identical output.
package event
