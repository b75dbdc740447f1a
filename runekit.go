// Package runekit works with individual Unicode scalar values: validated
// construction, digit conversion, UTF-8 and UTF-16 encoding into
// caller-provided buffers, and three lazy escape generators.
//
// # Core Features
//
//   - char.Scalar, a rune that is known to be a Unicode scalar value
//   - Encoding into fixed buffers with a typed error when the buffer is too short
//   - Escape generators (Unicode, Default, Debug) that can be stepped, cloned,
//     measured and rendered
//   - String escaping built on the generators (package escape)
//   - Self-describing text frames in UTF-8 or UTF-16 with optional
//     compression (None, Zstd, S2, LZ4) and xxHash64 checksums (package frame)
//
// # Basic Usage
//
// Escaping a single character:
//
//	import "github.com/arloliu/runekit/char"
//
//	esc := char.Scalar('é').EscapeUnicode()
//	fmt.Println(esc.Len(), esc.String()) // 6 \u{e9}
//	for c := range esc.All() {
//	    // '\\', 'u', '{', 'e', '9', '}'
//	}
//
// Escaping a string:
//
//	fmt.Println(runekit.EscapeDebug("naïve\n")) // naïve\n
//
// Storing text as a frame:
//
//	data, _ := runekit.EncodeFrame("日本語", frame.WithUTF16LittleEndian())
//	text, _ := runekit.DecodeFrame(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the escape and
// frame packages. Use char, escape and frame directly for full control.
package runekit

import (
	"github.com/arloliu/runekit/escape"
	"github.com/arloliu/runekit/format"
	"github.com/arloliu/runekit/frame"
)

var defaultFrameOptions = []frame.EncoderOption{
	frame.WithForm(format.FormUTF8),
	frame.WithCompression(format.CompressionZstd),
	frame.WithChecksum(true),
}

// EscapeUnicode replaces every character of s with its \u{NNNN} escape.
func EscapeUnicode(s string) string {
	return escape.Unicode(s)
}

// EscapeDefault escapes s into printable ASCII.
func EscapeDefault(s string) string {
	return escape.Default(s)
}

// EscapeDebug escapes s for diagnostic output, keeping printable characters.
func EscapeDebug(s string) string {
	// the default options cannot fail
	out, _ := escape.Debug(s)
	return out
}

// Quote returns EscapeDebug(s) in double quotes.
func Quote(s string) string {
	out, _ := escape.Quote(s)
	return out
}

// EncodeFrame stores s in a frame. With no options the frame holds UTF-8,
// Zstd compressed, with a checksum; opts override those defaults.
func EncodeFrame(s string, opts ...frame.EncoderOption) ([]byte, error) {
	finalOpts := make([]frame.EncoderOption, 0, len(defaultFrameOptions)+len(opts))
	finalOpts = append(finalOpts, defaultFrameOptions...)
	finalOpts = append(finalOpts, opts...)

	return frame.Encode(s, finalOpts...)
}

// DecodeFrame restores the text of a frame produced by EncodeFrame or frame.Encode.
func DecodeFrame(data []byte) (string, error) {
	return frame.Decode(data)
}
