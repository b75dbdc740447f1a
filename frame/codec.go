package frame

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/arloliu/runekit/char"
	"github.com/arloliu/runekit/compress"
	"github.com/arloliu/runekit/endian"
	"github.com/arloliu/runekit/errs"
	"github.com/arloliu/runekit/format"
	"github.com/arloliu/runekit/internal/hash"
	"github.com/arloliu/runekit/internal/pool"
)

// Encode stores s in a new frame.
//
// Every scalar value of s is encoded on its own through char.Scalar, so s must
// be valid UTF-8; otherwise an error wrapping errs.ErrInvalidEncoding is
// returned. Texts whose payload exceeds MaxPayloadSize are rejected with
// errs.ErrTooManyUnits.
func Encode(s string, opts ...EncoderOption) ([]byte, error) {
	cfg, err := newEncoderConfig(opts)
	if err != nil {
		return nil, err
	}

	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)

	var scalars, units uint64
	switch cfg.form {
	case format.FormUTF16:
		scalars, units, err = encodeUTF16(bb, s, cfg.engine)
	default:
		scalars, units, err = encodeUTF8(bb, s)
	}
	if err != nil {
		return nil, err
	}

	if bb.Len() > MaxPayloadSize {
		return nil, fmt.Errorf("%w: payload of %d bytes, limit is %d", errs.ErrTooManyUnits, bb.Len(), MaxPayloadSize)
	}

	header := Header{
		Flag:        NewFlag(),
		ScalarCount: uint32(scalars), //nolint: gosec
		UnitCount:   uint32(units),   //nolint: gosec
		PayloadSize: uint32(bb.Len()),
	}
	header.Flag.Form = uint8(cfg.form)
	header.Flag.Compression = uint8(cfg.compression)
	header.Flag.SetChecksum(cfg.checksum)
	if endian.IsBigEndian(cfg.engine) {
		header.Flag.WithBigEndian()
	} else {
		header.Flag.WithLittleEndian()
	}
	if cfg.checksum {
		header.Checksum = hash.Checksum(bb.Bytes())
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	body, err := codec.Compress(bb.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress %s payload: %w", cfg.compression, err)
	}

	out := make([]byte, 0, HeaderSize+len(body))
	out = header.AppendTo(out)
	out = append(out, body...)

	return out, nil
}

// encodeUTF8 appends s to bb and returns the scalar value and code unit counts.
func encodeUTF8(bb *pool.ByteBuffer, s string) (uint64, uint64, error) {
	bb.Grow(len(s))

	var scalars uint64
	var buf [char.MaxLenUTF8]byte
	for i := 0; i < len(s); {
		c, size, err := nextScalar(s, i)
		if err != nil {
			return 0, 0, err
		}
		i += size

		encoded, err := c.EncodeUTF8(buf[:c.LenUTF8()])
		if err != nil {
			return 0, 0, err
		}
		bb.MustWrite(encoded)
		scalars++
	}

	return scalars, uint64(bb.Len()), nil
}

func encodeUTF16(bb *pool.ByteBuffer, s string, engine endian.EndianEngine) (uint64, uint64, error) {
	bb.Grow(len(s) * 2)

	var scalars, units uint64
	var buf [char.MaxLenUTF16]uint16
	for i := 0; i < len(s); {
		c, size, err := nextScalar(s, i)
		if err != nil {
			return 0, 0, err
		}
		i += size

		encoded, err := c.EncodeUTF16(buf[:c.LenUTF16()])
		if err != nil {
			return 0, 0, err
		}
		bb.B = endian.AppendUnits(engine, bb.B, encoded)
		scalars++
		units += uint64(len(encoded))
	}

	return scalars, units, nil
}

func nextScalar(s string, i int) (char.Scalar, int, error) {
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError && size == 1 {
		return 0, 0, fmt.Errorf("%w: invalid UTF-8 at byte %d", errs.ErrInvalidEncoding, i)
	}

	return char.Scalar(r), size, nil
}

// Decode restores the text stored in a frame.
//
// The header is validated, the payload decompressed and checked against the
// recorded size, checksum and counts, and then decoded according to its
// encoding form.
func Decode(data []byte) (string, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return "", err
	}

	codec, err := compress.GetCodec(header.Flag.CompressionType())
	if err != nil {
		return "", err
	}

	payload, err := codec.DecompressSized(data[HeaderSize:], int(header.PayloadSize))
	if err != nil {
		return "", fmt.Errorf("decompress %s payload: %w", header.Flag.CompressionType(), err)
	}

	if uint64(len(payload)) != uint64(header.PayloadSize) {
		return "", fmt.Errorf("%w: got %d bytes, header says %d", errs.ErrPayloadSizeMismatch, len(payload), header.PayloadSize)
	}

	if header.Flag.HasChecksum() {
		if sum := hash.Checksum(payload); sum != header.Checksum {
			return "", fmt.Errorf("%w: got 0x%016x, header says 0x%016x", errs.ErrChecksumMismatch, sum, header.Checksum)
		}
	}

	switch header.Flag.EncodingForm() {
	case format.FormUTF16:
		return decodeUTF16(header, payload)
	default:
		return decodeUTF8(header, payload)
	}
}

func decodeUTF8(header Header, payload []byte) (string, error) {
	if !utf8.Valid(payload) {
		return "", fmt.Errorf("%w: payload is not valid UTF-8", errs.ErrInvalidEncoding)
	}

	if n := utf8.RuneCount(payload); uint64(n) != uint64(header.ScalarCount) {
		return "", fmt.Errorf("%w: %d scalar values, header says %d", errs.ErrInvalidEncoding, n, header.ScalarCount)
	}

	return string(payload), nil
}

func decodeUTF16(header Header, payload []byte) (string, error) {
	engine := header.Flag.GetEndianEngine()

	n, err := countUTF16(payload, engine)
	if err != nil {
		return "", err
	}
	if uint64(n) != uint64(header.ScalarCount) {
		return "", fmt.Errorf("%w: %d scalar values, header says %d", errs.ErrInvalidEncoding, n, header.ScalarCount)
	}

	order := unicode.BigEndian
	if header.Flag.IsLittleEndian() {
		order = unicode.LittleEndian
	}

	// a leading U+FEFF is text, not a byte order mark
	decoded, err := unicode.UTF16(order, unicode.IgnoreBOM).NewDecoder().Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrInvalidEncoding, err)
	}

	return string(decoded), nil
}

// countUTF16 counts the scalar values in UTF-16 payload and rejects unpaired
// surrogates, which the x/text decoder would silently replace.
func countUTF16(payload []byte, engine endian.EndianEngine) (int, error) {
	if len(payload)%2 != 0 {
		return 0, fmt.Errorf("%w: odd UTF-16 payload length %d", errs.ErrInvalidEncoding, len(payload))
	}

	n := 0
	for i := 0; i < len(payload); i += 2 {
		u := engine.Uint16(payload[i:])
		if utf16.IsSurrogate(rune(u)) {
			if i+4 > len(payload) {
				return 0, fmt.Errorf("%w: unpaired surrogate 0x%04x at unit %d", errs.ErrInvalidEncoding, u, i/2)
			}
			lo := engine.Uint16(payload[i+2:])
			if utf16.DecodeRune(rune(u), rune(lo)) == utf8.RuneError {
				return 0, fmt.Errorf("%w: unpaired surrogate 0x%04x at unit %d", errs.ErrInvalidEncoding, u, i/2)
			}
			i += 2
		}
		n++
	}

	return n, nil
}
