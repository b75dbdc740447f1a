package char

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/runekit/errs"
)

const (
	// MaxScalar is the highest valid scalar value.
	MaxScalar Scalar = 0x10FFFF
	// ReplacementChar is U+FFFD, used in place of undecodable input.
	ReplacementChar Scalar = 0xFFFD
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Scalar is a Unicode scalar value.
//
// Methods on Scalar assume the value is valid and do not check it again.
type Scalar rune

// IsValid reports whether r is a Unicode scalar value.
func IsValid(r rune) bool {
	switch {
	case r < 0 || r > rune(MaxScalar):
		return false
	case r >= surrogateMin && r <= surrogateMax:
		return false
	default:
		return true
	}
}

// FromRune converts r to a Scalar, rejecting negatives, surrogates and values
// above MaxScalar with ErrInvalidScalar.
func FromRune(r rune) (Scalar, error) {
	if !IsValid(r) {
		return 0, fmt.Errorf("%w: %#x", errs.ErrInvalidScalar, r)
	}

	return Scalar(r), nil
}

// FromUint32 converts u to a Scalar, rejecting surrogates and values above
// MaxScalar with ErrInvalidScalar.
func FromUint32(u uint32) (Scalar, error) {
	if u > uint32(MaxScalar) {
		return 0, fmt.Errorf("%w: %#x", errs.ErrInvalidScalar, u)
	}

	return FromRune(rune(u))
}

// MustFromRune is like FromRune but panics on an invalid value.
// It is intended for constants and tests.
func MustFromRune(r rune) Scalar {
	s, err := FromRune(r)
	if err != nil {
		panic(err)
	}

	return s
}

// Parse returns the single scalar value held by s.
//
// Returns:
//   - ErrEmptyString if s is empty
//   - ErrInvalidScalar if s does not start with well-formed UTF-8
//   - ErrTooManyChars if s holds more than one scalar value
func Parse(s string) (Scalar, error) {
	if s == "" {
		return 0, errs.ErrEmptyString
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("%w: malformed UTF-8 in %q", errs.ErrInvalidScalar, s)
	}

	if size != len(s) {
		return 0, fmt.Errorf("%w: %q", errs.ErrTooManyChars, s)
	}

	return Scalar(r), nil
}

// Rune returns s as a rune.
func (s Scalar) Rune() rune {
	return rune(s)
}

// String returns the UTF-8 text of s.
func (s Scalar) String() string {
	var buf [4]byte
	out, _ := s.EncodeUTF8(buf[:])

	return string(out)
}
