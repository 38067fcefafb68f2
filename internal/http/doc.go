// Package http provides HTTP handlers and middleware for the calendar API.
//
// The router exposes the following endpoints:
//   - GET /api/bookings/{date}: returns the calendar page for the date as
//     {"date","bookings","timeSlots"}. Bookings include weekly follow-up
//     occurrences materialized for the date; those carry a synthetic id of the
//     form "<anchorId>-<date>" and a "seriesId" naming the stored anchor.
//   - POST /api/bookings: books a call. Body:
//     {"clientId","callType","date","startTime"}. Responds 201 with the stored
//     booking, 422 for invalid fields, 404 for unknown clients and 409 when
//     the requested slot overlaps an existing call.
//   - DELETE /api/bookings/{id}: removes a booking. A synthetic occurrence id
//     resolves to its series anchor, deleting the whole series. Always
//     responds 204, whether or not the id existed.
//   - GET /api/clients: returns the client roster ordered by name.
//   - GET /api/health: liveness check that also probes the store.
//   - GET /metrics: Prometheus metrics.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
