// Package errors provides structured, actionable error messages for the
// animation toolkit.
//
// Every error carries a code (e.g. "E001") that maps to a registered
// template with a category, a short message, a longer explanation and a
// documentation link. Callers add the offending field and value, a
// suggestion, or wrap an underlying cause.
//
// # Error Categories
//
//   - validation: a value is not part of an option vocabulary
//   - config: the project file is missing or malformed
//   - settings: the global settings source cannot be read or decoded
//   - render: HTML output could not be produced
//   - cli: command line usage errors
//
// # Usage
//
//	err := errors.New("E001").
//	    WithField("animation", "spin").
//	    WithSuggestion("Use one of the values listed by 'animate vocab animations'")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Invalid animation
//	//
//	//   animation = "spin"
//	//
//	//   The value is not one of the animations known to the client library.
//	//
//	//   Hint: Use one of the values listed by 'animate vocab animations'
//	//
//	//   Learn more: https://vango.dev/docs/animate/errors/E001
package errors
