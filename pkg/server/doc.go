// Package server serves the animation demo page and a small JSON API over a
// chi router.
//
// Routes:
//
//	GET  /                 demo page, optional ?animation=
//	GET  /api/vocabulary   animations, placements, easings, disable options
//	GET  /api/attributes   attribute set for the query options
//	GET  /api/payload      client bootstrap payload
//	GET  /api/settings     current global settings
//	POST /api/apply        animate an HTML document by selector
//	GET  /animate.js       client init script, uncached
//	GET  /assets/{name}    fingerprinted assets, cached immutably
//	GET  /metrics          Prometheus metrics
//	GET  /healthz          liveness
//	GET  /_animate/reload  live settings reload websocket
//
// The global settings are read from a settings.Holder on every request, so a
// swapped store is visible to the next request without restarting.
package server
