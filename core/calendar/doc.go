// Package calendar provides the in-memory document model that the diff engine
// compares.
//
// A Document wraps a root Item (normally VCALENDAR). Every Item carries a kind
// name and an ordered list of fields. A field is a tagged union: it either
// holds scalar Values (content lines such as SUMMARY or DTSTART) or nested
// Items (sub-components such as VEVENT or VALARM), never both.
//
// # Decoding
//
// Decode reads iCalendar text with github.com/emersion/go-ical and converts
// the component tree into Items. Property and parameter names are sorted so
// that two decodes of the same text always produce the same field order.
//
// # Ownership
//
// The model is plain data. Callers that need to modify a tree they do not own
// should Clone it first; the diff engine never mutates its inputs.
package calendar
