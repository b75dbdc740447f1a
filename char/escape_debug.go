package char

import (
	"iter"

	"github.com/arloliu/runekit/printable"
)

// Printable decides whether a scalar value may appear unescaped in debug output.
// The printable package provides ready-made implementations.
type Printable func(r rune) bool

// EscapeDebug yields the debug escape of a scalar value. It selects shapes
// like [EscapeDefault], but characters other than \t \r \n \\ \' \" print
// unescaped whenever the [Printable] oracle accepts them.
//
// It is created by [Scalar.EscapeDebug] or [Scalar.EscapeDebugWith].
type EscapeDebug struct {
	inner EscapeDefault
}

// EscapeDebug returns a debug escape generator for s using printable.Default.
func (s Scalar) EscapeDebug() EscapeDebug {
	return s.EscapeDebugWith(printable.Default)
}

// EscapeDebugWith returns a debug escape generator for s using the given
// oracle. A nil oracle falls back to printable.Default.
func (s Scalar) EscapeDebugWith(oracle Printable) EscapeDebug {
	if oracle == nil {
		oracle = printable.Default
	}

	return EscapeDebug{inner: newEscapeDefault(s, oracle)}
}

// Next returns the next character and advances the generator.
func (e *EscapeDebug) Next() (Scalar, bool) { return e.inner.Next() }

// Nth skips n characters and returns the one after them, like [EscapeDefault.Nth].
func (e *EscapeDebug) Nth(n int) (Scalar, bool) { return e.inner.Nth(n) }

// Len returns the exact number of characters left.
func (e EscapeDebug) Len() int { return e.inner.Len() }

// LenUTF8 returns the number of bytes AppendTo would write.
func (e EscapeDebug) LenUTF8() int { return e.inner.LenUTF8() }

// Last returns the final character without consuming anything.
func (e EscapeDebug) Last() (Scalar, bool) { return e.inner.Last() }

// All returns an iterator over the remaining characters; e is left untouched.
func (e EscapeDebug) All() iter.Seq[Scalar] { return e.inner.All() }

// AppendTo appends the remaining characters to dst as UTF-8.
func (e EscapeDebug) AppendTo(dst []byte) []byte { return e.inner.AppendTo(dst) }

// String returns the remaining characters as a string.
func (e EscapeDebug) String() string { return e.inner.String() }
