// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) with constant-time comparison.
//   - rayid: assigns every request a RayID, stored in locals and echoed in the
//     X-Ray-ID response header for log correlation.
//
// The serve command registers rayid first so every later log line carries it.
package middleware
