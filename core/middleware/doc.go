// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query parameter).
//     An empty key disables the check.
//   - rayid: assigns a RayID to every request, stores it in the context locals
//     and echoes it in the X-Ray-ID response header. logger.WithRayID reads it.
//
// RayID is registered first so that every log line of a request carries it.
package middleware
