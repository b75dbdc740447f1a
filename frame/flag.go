package frame

import (
	"fmt"

	"github.com/arloliu/runekit/endian"
	"github.com/arloliu/runekit/errs"
	"github.com/arloliu/runekit/format"
)

// Flag is the packed leading word of a frame header plus the form and
// compression bytes that follow it.
type Flag struct {
	// Options carries the endianness bit, the checksum bit and the magic number.
	Options     uint16
	Form        uint8
	Compression uint8
}

// NewFlag returns a little-endian UTF-8 flag with checksum enabled and no compression.
func NewFlag() Flag {
	return Flag{
		Options:     MagicTextV1 | ChecksumMask,
		Form:        uint8(format.FormUTF8),
		Compression: uint8(format.CompressionNone),
	}
}

// IsLittleEndian reports whether the header counters and UTF-16 units are little-endian.
func (f Flag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

// IsBigEndian reports whether the header counters and UTF-16 units are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian clears the endianness bit.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets the endianness bit.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// HasChecksum reports whether the checksum field is populated.
func (f Flag) HasChecksum() bool {
	return f.Options&ChecksumMask != 0
}

// SetChecksum sets or clears the checksum bit.
func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// GetEndianEngine returns the engine for the frame's byte order.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns bits 4-15 of the options word.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// EncodingForm returns the payload encoding form.
func (f Flag) EncodingForm() format.Form {
	return format.Form(f.Form)
}

// CompressionType returns the payload codec.
func (f Flag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, the reserved bits and the enum bytes.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicTextV1 {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedMask != 0 {
		return fmt.Errorf("%w: reserved bits set in 0x%04x", errs.ErrInvalidHeaderFlags, f.Options)
	}

	if !f.EncodingForm().IsValid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidForm, f.Form)
	}

	if !f.CompressionType().IsValid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, f.Compression)
	}

	return nil
}
