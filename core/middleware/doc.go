// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: Validates the X-Api-Key header to protect the reconciliation API.
//     An empty configured key leaves the server open.
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// These middleware components are registered globally in the start command,
// with rayid first so every log line of a request carries its ID.
package middleware
