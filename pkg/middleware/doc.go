// Package middleware provides net/http observability for the animation
// server.
//
// # Prometheus Metrics
//
// NewMetrics registers the collectors and returns a Metrics value whose
// Handler wraps an http.Handler:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("animate"))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// Collected series:
//   - animate_http_requests_total: requests by route and status code
//   - animate_http_request_duration_seconds: request latency by route
//   - animate_elements_animated_total: elements that received attributes, by animation
//   - animate_validation_errors_total: rejected option values by error code
//   - animate_settings_reloads_total: settings reloads by result
//   - animate_reload_clients: connected live reload clients
//
// # OpenTelemetry
//
// Tracing starts a server span per request using the global tracer
// provider. Handlers reach the span through trace.SpanFromContext on the
// request context.
//
//	r.Use(middleware.Tracing(middleware.WithTracerName("animate")))
package middleware
