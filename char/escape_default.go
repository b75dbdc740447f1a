package char

import "iter"

type defaultState uint8

const (
	defaultDone defaultState = iota
	defaultChar
	defaultBackslash
	defaultUnicode
)

// EscapeDefault yields the literal escape of a scalar value.
//
// Exactly one shape is active, chosen when the generator is created:
//   - a backslash pair (\t, \r, \n, \\, \', \"), stepping Backslash → Char → Done
//   - the character itself, stepping Char → Done
//   - an embedded [EscapeUnicode]
//
// It is created by [Scalar.EscapeDefault]. The zero value is exhausted.
type EscapeDefault struct {
	state defaultState
	c     Scalar // payload of defaultChar and defaultBackslash
	esc   EscapeUnicode
}

// EscapeDefault returns a generator for the C-like escape of s. Printable
// ASCII (0x20..=0x7E) other than backslash and quotes is kept as is, and
// everything outside that range is hex escaped.
func (s Scalar) EscapeDefault() EscapeDefault {
	return newEscapeDefault(s, isASCIIPrintable)
}

func isASCIIPrintable(r rune) bool {
	return r >= 0x20 && r <= 0x7E
}

func newEscapeDefault(s Scalar, printable Printable) EscapeDefault {
	switch s {
	case '\t':
		return EscapeDefault{state: defaultBackslash, c: 't'}
	case '\r':
		return EscapeDefault{state: defaultBackslash, c: 'r'}
	case '\n':
		return EscapeDefault{state: defaultBackslash, c: 'n'}
	case '\\', '\'', '"':
		return EscapeDefault{state: defaultBackslash, c: s}
	}

	if printable(rune(s)) {
		return EscapeDefault{state: defaultChar, c: s}
	}

	return EscapeDefault{state: defaultUnicode, esc: s.EscapeUnicode()}
}

// Next returns the next character of the escape and advances the generator.
// It returns false once the sequence is exhausted, and keeps returning false.
func (e *EscapeDefault) Next() (Scalar, bool) {
	switch e.state {
	case defaultBackslash:
		e.state = defaultChar
		return '\\', true
	case defaultChar:
		e.state = defaultDone
		return e.c, true
	case defaultUnicode:
		return e.esc.Next()
	default:
		return 0, false
	}
}

// Len returns the exact number of characters left.
func (e EscapeDefault) Len() int {
	switch e.state {
	case defaultChar:
		return 1
	case defaultBackslash:
		return 2
	case defaultUnicode:
		return e.esc.Len()
	default:
		return 0
	}
}

// LenUTF8 returns the number of bytes AppendTo would write. It equals Len
// except when the remaining character is kept as is and lies outside ASCII.
func (e EscapeDefault) LenUTF8() int {
	if e.state == defaultChar {
		return e.c.LenUTF8()
	}

	return e.Len()
}

// Nth skips n characters and returns the one after them. It returns false and
// leaves the generator exhausted if fewer than n+1 characters remain.
// A negative n behaves like 0.
func (e *EscapeDefault) Nth(n int) (Scalar, bool) {
	n = max(n, 0)

	switch e.state {
	case defaultBackslash:
		switch n {
		case 0:
			e.state = defaultChar
			return '\\', true
		case 1:
			e.state = defaultDone
			return e.c, true
		default:
			e.state = defaultDone
			return 0, false
		}
	case defaultChar:
		e.state = defaultDone
		if n == 0 {
			return e.c, true
		}

		return 0, false
	case defaultUnicode:
		return e.esc.Nth(n)
	default:
		return 0, false
	}
}

// Last returns the final character of the remaining sequence without
// consuming it.
func (e EscapeDefault) Last() (Scalar, bool) {
	switch e.state {
	case defaultBackslash, defaultChar:
		return e.c, true
	case defaultUnicode:
		return e.esc.Last()
	default:
		return 0, false
	}
}

// All returns an iterator over the remaining characters. Ranging over it
// works on a copy, so e is left untouched and the iterator can be reused.
func (e EscapeDefault) All() iter.Seq[Scalar] {
	return func(yield func(Scalar) bool) {
		it := e
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// AppendTo appends the remaining characters to dst as UTF-8.
func (e EscapeDefault) AppendTo(dst []byte) []byte {
	for c, ok := e.Next(); ok; c, ok = e.Next() {
		dst = c.AppendUTF8(dst)
	}

	return dst
}

// String returns the remaining characters as a string.
func (e EscapeDefault) String() string {
	return string(e.AppendTo(make([]byte, 0, e.Len())))
}
