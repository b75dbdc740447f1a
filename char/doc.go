// Package char provides character-level operations on Unicode scalar values:
// radix digit conversion, UTF-8 and UTF-16 length calculation, fixed-buffer
// encoding, and lazily produced escape sequences.
//
// A scalar value is any code point in 0..=0x10FFFF outside the surrogate range
// 0xD800..=0xDFFF. The package treats a [Scalar] as already validated; use
// [FromUint32], [FromRune] or [Parse] to build one from untrusted input.
//
// # Encoding
//
// The encoders write into a caller-supplied buffer and never allocate:
//
//	var buf [4]byte
//	out, err := char.Scalar('ß').EncodeUTF8(buf[:])
//	// out == []byte{0xC3, 0x9F}
//
// A destination shorter than [Scalar.LenUTF8] (or [Scalar.LenUTF16]) yields an
// [errs.BufferTooSmallError] carrying the required and available sizes, and
// nothing is written.
//
// # Escaping
//
// Three generators produce escape sequences one character at a time:
//
//   - [EscapeUnicode]: the \u{NNNN} form with lowercase hex digits
//   - [EscapeDefault]: \t \r \n \\ \' \" escapes, printable ASCII as is,
//     everything else as [EscapeUnicode]
//   - [EscapeDebug]: like [EscapeDefault], but a [Printable] oracle decides
//     which characters print unescaped
//
// Generators are plain values. Copying one clones its state, so a saved copy
// can be replayed from the same position. Len is always exact and is computed
// from the state, not by walking the sequence:
//
//	e := char.Scalar(0x1F600).EscapeDefault()
//	e.Len()    // 9
//	e.String() // `\u{1f600}`
//
// # Thread Safety
//
// All functions are pure. Generators are not safe for concurrent mutation;
// give each goroutine its own copy.
package char
