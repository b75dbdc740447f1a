// Package printable provides predicates deciding whether a scalar value may be
// shown unescaped in debug output.
//
// Each predicate has the signature func(rune) bool and can be passed directly
// to char.Scalar.EscapeDebugWith or escape.WithOracle.
package printable

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var (
	// Default accepts letters, marks, numbers, punctuation, symbols and the
	// ASCII space (unicode.IsPrint). Other spaces, controls, format
	// characters, private use and unassigned code points are rejected.
	Default = unicode.IsPrint

	// Graphic is Default plus the Unicode space separators (unicode.IsGraphic).
	Graphic = unicode.IsGraphic
)

// ASCII accepts 0x20..=0x7E only, the policy used by default escaping.
func ASCII(r rune) bool {
	return r >= 0x20 && r <= 0x7E
}

// FromTables returns a predicate that accepts exactly the code points in the
// union of tables. With no tables it rejects everything.
//
// Example:
//
//	// print letters and digits, escape everything else
//	p := printable.FromTables(unicode.L, unicode.Nd)
func FromTables(tables ...*unicode.RangeTable) func(rune) bool {
	if len(tables) == 0 {
		return func(rune) bool { return false }
	}

	merged := rangetable.Merge(tables...)

	return func(r rune) bool {
		return unicode.Is(merged, r)
	}
}

// Except returns a predicate accepting what base accepts, minus the listed code points.
func Except(base func(rune) bool, excluded ...rune) func(rune) bool {
	skip := make(map[rune]struct{}, len(excluded))
	for _, r := range excluded {
		skip[r] = struct{}{}
	}

	return func(r rune) bool {
		if _, ok := skip[r]; ok {
			return false
		}

		return base(r)
	}
}
