// Package diff exposes the calendar diff engine over HTTP.
//
// # Endpoints
//
//   - POST /diff: compare two calendars given inline or as source references.
//     ?format=text returns the marker layout instead of JSON.
//   - GET /diff/reports: list stored reports, newest first.
//   - GET /diff/reports/:id: one stored report with its pairs.
//
// Reports are stored only when the request asks for it and the history
// database is configured.
package diff
