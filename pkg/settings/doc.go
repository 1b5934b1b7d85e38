// Package settings holds the global animation settings: the values the
// client library falls back to when an element carries no data-aos-*
// override.
//
// A Store is an immutable snapshot of configured values layered over the
// library defaults. It answers two questions for the animation core:
// CurrentValue (what is active for a key) and DiffFromDefault (which keys
// were configured away from the library default). Values are normalised on
// the way in, so a delay decoded from JSON as 150.0 or "150" compares equal
// to the int 150.
//
// Stores are produced from a Source (a JSON file or an S3 object) and can be
// swapped atomically through a Holder when the source changes.
package settings
