// Package escape escapes whole strings with the per-character generators of
// package char.
//
// Each function decodes its input as UTF-8 and concatenates the escape of
// every scalar value:
//
//	escape.Unicode("é")        // \u{e9}
//	escape.Default("tab\there") // tab\there with a literal backslash-t
//	escape.Debug("naïve\n")    // naïve\n
//
// Bytes that do not form valid UTF-8 are escaped one at a time as \u{fffd},
// the escape of the replacement character, whatever the mode. The output is
// therefore always valid UTF-8.
//
// The Len functions return the exact length of the corresponding output
// without building it.
package escape
