// Package otel provides OpenTelemetry metric exporter bindings for
// cookiesession counters.
//
// [NewOTelExporter] registers an Int64ObservableCounter per counter. A single
// callback reads [cookiesession.Middleware.MetricsSnapshot] on each
// collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate middleware state.
package otel
