package char

import (
	"iter"
	"math/bits"
)

// unicodeState values are ordered so that each equals the number of
// non-digit characters still to come.
type unicodeState uint8

const (
	unicodeDone unicodeState = iota
	unicodeRightBrace
	unicodeValue
	unicodeLeftBrace
	unicodeType
	unicodeBackslash
)

// EscapeUnicode yields the hexadecimal escape of a scalar value in the form
// \u{NNNN}, with lowercase digits and no leading zeros.
//
// It is created by [Scalar.EscapeUnicode]. The zero value is exhausted.
type EscapeUnicode struct {
	c     Scalar
	state unicodeState

	// index of the next hex digit to print, counting from the least
	// significant nibble; it only moves down.
	hexDigitIdx int
}

// EscapeUnicode returns a generator for the \u{NNNN} escape of s.
func (s Scalar) EscapeUnicode() EscapeUnicode {
	// or-ing 1 makes the zero value print a single digit
	msb := bits.Len32(uint32(s)|1) - 1

	return EscapeUnicode{
		c:           s,
		state:       unicodeBackslash,
		hexDigitIdx: msb / 4,
	}
}

// Next returns the next character of the escape and advances the generator.
// It returns false once the sequence is exhausted, and keeps returning false.
func (e *EscapeUnicode) Next() (Scalar, bool) {
	switch e.state {
	case unicodeBackslash:
		e.state = unicodeType
		return '\\', true
	case unicodeType:
		e.state = unicodeLeftBrace
		return 'u', true
	case unicodeLeftBrace:
		e.state = unicodeValue
		return '{', true
	case unicodeValue:
		nibble := (uint32(e.c) >> (uint(e.hexDigitIdx) * 4)) & 0xF
		c, _ := FromDigit(nibble, 16)
		if e.hexDigitIdx == 0 {
			e.state = unicodeRightBrace
		} else {
			e.hexDigitIdx--
		}

		return c, true
	case unicodeRightBrace:
		e.state = unicodeDone
		return '}', true
	default:
		return 0, false
	}
}

// Len returns the exact number of characters left.
func (e EscapeUnicode) Len() int {
	return e.hexDigitIdx + int(e.state)
}

// Nth skips n characters and returns the one after them. It returns false and
// leaves the generator exhausted if fewer than n+1 characters remain.
// A negative n behaves like 0.
func (e *EscapeUnicode) Nth(n int) (Scalar, bool) {
	for ; n > 0; n-- {
		if _, ok := e.Next(); !ok {
			return 0, false
		}
	}

	return e.Next()
}

// Last returns the final character of the remaining sequence without
// consuming it: '}' unless the generator is exhausted.
func (e EscapeUnicode) Last() (Scalar, bool) {
	if e.state == unicodeDone {
		return 0, false
	}

	return '}', true
}

// All returns an iterator over the remaining characters. Ranging over it
// works on a copy, so e is left untouched and the iterator can be reused.
func (e EscapeUnicode) All() iter.Seq[Scalar] {
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
func (e EscapeUnicode) AppendTo(dst []byte) []byte {
	for c, ok := e.Next(); ok; c, ok = e.Next() {
		dst = append(dst, byte(c))
	}

	return dst
}

// String returns the remaining characters as a string.
func (e EscapeUnicode) String() string {
	return string(e.AppendTo(make([]byte, 0, e.Len())))
}
