// Package animate turns per-element animation options into the data-aos
// attributes and bootstrap settings consumed by the AOS client library.
//
// A Descriptor is built from a GlobalSettings snapshot plus per-call
// overrides:
//
//	d, err := animate.New(store, map[string]any{"delay": 150})
//	if err != nil {
//	    return err
//	}
//	d.SetOnce()
//	card = animate.ApplyTo(card, d)
//
// Only values that differ from the active global settings become
// attributes, so the DOM stays small and the client falls back to the
// global configuration for everything else. The bootstrap payload carries
// the global settings that differ from the library's own defaults.
//
// Animation, easing and anchor placement values are checked against the
// vocabulary when set; anything else fails with an error wrapping
// ErrInvalidArgument.
package animate
