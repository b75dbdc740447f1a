// Package errs defines the sentinel errors returned by runekit packages.
//
// Callers match them with errors.Is; the packages wrap them with additional
// detail using fmt.Errorf("%w: ...").
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooSmall is returned when a fixed-size destination cannot hold an encoded scalar value.
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrInvalidRadix indicates a radix above 36. It is raised by panic since radix is a caller constant.
	ErrInvalidRadix = errors.New("radix is too high (maximum 36)")
	// ErrInvalidScalar indicates a negative value, a surrogate or a value above U+10FFFF.
	ErrInvalidScalar = errors.New("invalid unicode scalar value")
	// ErrEmptyString is returned when parsing a scalar value from an empty string.
	ErrEmptyString = errors.New("cannot parse scalar value from empty string")
	// ErrTooManyChars is returned when parsing a scalar value from a string holding more than one.
	ErrTooManyChars = errors.New("too many characters in string")
	// ErrInvalidQuote is returned when a quote delimiter other than '"' or '\'' is requested.
	ErrInvalidQuote = errors.New("invalid quote delimiter")

	ErrInvalidHeaderSize   = errors.New("invalid frame header size")
	ErrInvalidHeaderFlags  = errors.New("invalid frame header flags")
	ErrInvalidMagicNumber  = errors.New("invalid frame magic number")
	ErrInvalidForm         = errors.New("invalid encoding form")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrPayloadSizeMismatch = errors.New("payload size mismatch")
	ErrChecksumMismatch    = errors.New("payload checksum mismatch")
	ErrInvalidEncoding     = errors.New("payload is not well-formed")
	ErrTooManyUnits        = errors.New("text exceeds maximum frame size")
)

// BufferTooSmallError reports how many units an encoder needed and how many
// the destination offered. It matches ErrBufferTooSmall.
type BufferTooSmallError struct {
	Op        string // encoder name, e.g. "encode_utf8"
	Scalar    rune
	Required  int
	Available int
}

// Error reports the encoder, the scalar value and both sizes.
func (e *BufferTooSmallError) Error() string {
	unit := "bytes"
	if e.Op == "encode_utf16" {
		unit = "units"
	}

	return fmt.Sprintf("%s: need %d %s to encode U+%04X, but the buffer has %d",
		e.Op, e.Required, unit, e.Scalar, e.Available)
}

// Is reports whether target is ErrBufferTooSmall.
func (e *BufferTooSmallError) Is(target error) bool {
	return target == ErrBufferTooSmall
}
