package char

import (
	"fmt"

	"github.com/arloliu/runekit/errs"
)

// MaxRadix is the largest radix supported by digit conversion.
const MaxRadix = 36

// CheckRadix returns an error wrapping ErrInvalidRadix if radix exceeds MaxRadix.
//
// ToDigit and FromDigit panic on such a radix; call CheckRadix first when the
// radix is not a constant.
func CheckRadix(radix uint32) error {
	if radix > MaxRadix {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidRadix, radix)
	}

	return nil
}

func mustRadix(op string, radix uint32) {
	if err := CheckRadix(radix); err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}
}

// ToDigit converts s to its digit value in the given radix.
//
// '0'-'9' map to 0-9 and ASCII letters map to 10-35 regardless of case. The
// second result is false if s is not a digit or its value is not below radix,
// so ToDigit('c', 10) fails while ToDigit('c', 16) returns 12.
//
// ToDigit panics with an error wrapping ErrInvalidRadix if radix > MaxRadix.
func (s Scalar) ToDigit(radix uint32) (uint32, bool) {
	mustRadix("ToDigit", radix)

	var val uint32
	switch {
	case s >= '0' && s <= '9':
		val = uint32(s - '0')
	case s >= 'a' && s <= 'z':
		val = uint32(s-'a') + 10
	case s >= 'A' && s <= 'Z':
		val = uint32(s-'A') + 10
	default:
		return 0, false
	}

	if val < radix {
		return val, true
	}

	return 0, false
}

// IsDigit reports whether s is a digit in the given radix.
// It panics like ToDigit if radix > MaxRadix.
func (s Scalar) IsDigit(radix uint32) bool {
	_, ok := s.ToDigit(radix)
	return ok
}

// FromDigit returns the character for digit in the given radix, using
// lowercase letters for values 10 and above. The second result is false if
// digit >= radix.
//
// FromDigit panics with an error wrapping ErrInvalidRadix if radix > MaxRadix.
func FromDigit(digit, radix uint32) (Scalar, bool) {
	mustRadix("FromDigit", radix)

	if digit >= radix {
		return 0, false
	}

	if digit < 10 {
		return Scalar('0' + digit), true
	}

	return Scalar('a' + digit - 10), true
}
