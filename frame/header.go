package frame

import (
	"fmt"

	"github.com/arloliu/runekit/errs"
)

// Header is the decoded fixed-size header of a frame.
type Header struct {
	Flag Flag // byte offset 0-3

	// ScalarCount is the number of scalar values in the text.
	ScalarCount uint32 // byte offset 4-7
	// UnitCount is the number of code units: bytes for UTF-8, 16-bit units for UTF-16.
	UnitCount uint32 // byte offset 8-11
	// PayloadSize is the payload size in bytes before compression.
	PayloadSize uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the uncompressed payload, or 0 when disabled.
	Checksum uint64 // byte offset 16-23
}

// Parse parses the header from exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// the options word is always little-endian; it tells the order of the rest
	h.Flag.Options = uint16(data[optionsOffset]) | uint16(data[optionsOffset+1])<<8
	h.Flag.Form = data[formOffset]
	h.Flag.Compression = data[compressionOffset]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.ScalarCount = engine.Uint32(data[scalarCountOffset:])
	h.UnitCount = engine.Uint32(data[unitCountOffset:])
	h.PayloadSize = engine.Uint32(data[payloadSizeOffset:])
	h.Checksum = engine.Uint64(data[checksumOffset:])

	if h.PayloadSize > MaxPayloadSize {
		return fmt.Errorf("%w: header claims %d payload bytes, limit is %d", errs.ErrTooManyUnits, h.PayloadSize, MaxPayloadSize)
	}

	if uint64(h.UnitCount)*uint64(h.Flag.EncodingForm().UnitSize()) != uint64(h.PayloadSize) {
		return fmt.Errorf("%w: %d units of %s do not fill %d bytes",
			errs.ErrPayloadSizeMismatch, h.UnitCount, h.Flag.EncodingForm(), h.PayloadSize)
	}

	if h.ScalarCount > h.UnitCount {
		return fmt.Errorf("%w: %d scalar values in %d units", errs.ErrInvalidHeaderFlags, h.ScalarCount, h.UnitCount)
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Form, h.Flag.Compression)
	dst = engine.AppendUint32(dst, h.ScalarCount)
	dst = engine.AppendUint32(dst, h.UnitCount)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseHeader parses the header at the start of a frame. Bytes after the
// header are ignored.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
