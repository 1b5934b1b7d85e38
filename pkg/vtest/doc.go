// Package vtest provides testing helpers for animated render trees.
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, node, `class="card"`)
//	vtest.ExpectNotContains(t, node, "data-aos-once")
//
// # Animation Assertions
//
// Assert on the data-aos attributes of a single element without rendering:
//
//	vtest.ExpectAnimation(t, card, map[string]string{
//	    "data-aos":          "fade-up",
//	    "data-aos-duration": "800",
//	})
//
// ExpectAnimation compares the complete attribute set, so an attribute
// that should have been suppressed fails the assertion.
package vtest
