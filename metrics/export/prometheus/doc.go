// Package prometheus renders cookiesession metrics in Prometheus text
// exposition format.
//
// [NewPrometheusExporter] accepts a [cookiesession.Middleware] and exposes an
// [http.Handler] that renders every counter. Counter names are prefixed
// cookiesession_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate middleware state.
package prometheus
