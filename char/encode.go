package char

import "github.com/arloliu/runekit/errs"

// UTF-8 tags and length-class limits.
const (
	tagCont   = 0b1000_0000
	tagTwoB   = 0b1100_0000
	tagThreeB = 0b1110_0000
	tagFourB  = 0b1111_0000

	maxOneB   = 0x80
	maxTwoB   = 0x800
	maxThreeB = 0x10000
)

// UTF-16 surrogate bases.
const (
	surrHigh = 0xD800
	surrLow  = 0xDC00
	surrSelf = 0x10000
)

// MaxLenUTF8 and MaxLenUTF16 are the largest encoded lengths of any scalar value.
const (
	MaxLenUTF8  = 4
	MaxLenUTF16 = 2
)

// LenUTF8 returns the number of bytes needed to encode s in UTF-8.
func (s Scalar) LenUTF8() int {
	code := uint32(s)
	switch {
	case code < maxOneB:
		return 1
	case code < maxTwoB:
		return 2
	case code < maxThreeB:
		return 3
	default:
		return 4
	}
}

// LenUTF16 returns the number of 16-bit code units needed to encode s in UTF-16.
func (s Scalar) LenUTF16() int {
	code := uint32(s)
	if code&0xFFFF == code {
		return 1
	}

	return 2
}

// EncodeUTF8 writes the UTF-8 encoding of s to the start of dst and returns
// the written prefix. The returned slice has its capacity clipped to its length.
//
// If dst is shorter than s.LenUTF8(), nothing is written and the error is an
// *errs.BufferTooSmallError matching errs.ErrBufferTooSmall.
func (s Scalar) EncodeUTF8(dst []byte) ([]byte, error) {
	n := s.LenUTF8()
	if len(dst) < n {
		return nil, &errs.BufferTooSmallError{Op: "encode_utf8", Scalar: rune(s), Required: n, Available: len(dst)}
	}

	code := uint32(s)
	switch n {
	case 1:
		dst[0] = byte(code)
	case 2:
		dst[0] = byte(code>>6&0x1F) | tagTwoB
		dst[1] = byte(code&0x3F) | tagCont
	case 3:
		dst[0] = byte(code>>12&0x0F) | tagThreeB
		dst[1] = byte(code>>6&0x3F) | tagCont
		dst[2] = byte(code&0x3F) | tagCont
	default:
		dst[0] = byte(code>>18&0x07) | tagFourB
		dst[1] = byte(code>>12&0x3F) | tagCont
		dst[2] = byte(code>>6&0x3F) | tagCont
		dst[3] = byte(code&0x3F) | tagCont
	}

	return dst[:n:n], nil
}

// EncodeUTF16 writes the UTF-16 encoding of s to the start of dst and returns
// the written prefix. Values outside the Basic Multilingual Plane take two
// units, a high surrogate followed by a low surrogate.
//
// If dst is shorter than s.LenUTF16(), nothing is written and the error is an
// *errs.BufferTooSmallError matching errs.ErrBufferTooSmall.
func (s Scalar) EncodeUTF16(dst []uint16) ([]uint16, error) {
	n := s.LenUTF16()
	if len(dst) < n {
		return nil, &errs.BufferTooSmallError{Op: "encode_utf16", Scalar: rune(s), Required: n, Available: len(dst)}
	}

	code := uint32(s)
	if n == 1 {
		dst[0] = uint16(code)
		return dst[:1:1], nil
	}

	code -= surrSelf
	dst[0] = surrHigh | uint16(code>>10)
	dst[1] = surrLow | uint16(code&0x3FF)

	return dst[:2:2], nil
}

// AppendUTF8 appends the UTF-8 encoding of s to dst.
func (s Scalar) AppendUTF8(dst []byte) []byte {
	var buf [MaxLenUTF8]byte
	out, _ := s.EncodeUTF8(buf[:])

	return append(dst, out...)
}
