package escape

import (
	"iter"
	"unicode/utf8"

	"github.com/arloliu/runekit/char"
	"github.com/arloliu/runekit/internal/pool"
)

// scalars yields each scalar value of s. Invalid bytes yield
// char.ReplacementChar with ok set to false, one byte at a time.
func scalars(s string) iter.Seq2[char.Scalar, bool] {
	return func(yield func(char.Scalar, bool) bool) {
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			ok := r != utf8.RuneError || size > 1
			i += size

			if !yield(char.Scalar(r), ok) {
				return
			}
		}
	}
}

// Unicode replaces every scalar value of s with its \u{NNNN} escape.
func Unicode(s string) string {
	return build(func(dst []byte) []byte {
		return AppendUnicode(dst, s)
	})
}

// AppendUnicode appends the result of Unicode(s) to dst.
func AppendUnicode(dst []byte, s string) []byte {
	for c := range scalars(s) {
		dst = c.EscapeUnicode().AppendTo(dst)
	}

	return dst
}

// LenUnicode returns len(Unicode(s)).
func LenUnicode(s string) int {
	n := 0
	for c := range scalars(s) {
		n += c.EscapeUnicode().Len()
	}

	return n
}

// Default escapes s the way char.Scalar.EscapeDefault escapes a character:
// printable ASCII is kept, \t \r \n \\ \' \" get backslash escapes and
// everything else becomes \u{NNNN}. The result is pure ASCII.
func Default(s string) string {
	return build(func(dst []byte) []byte {
		return AppendDefault(dst, s)
	})
}

// AppendDefault appends the result of Default(s) to dst.
func AppendDefault(dst []byte, s string) []byte {
	for c, ok := range scalars(s) {
		if !ok {
			dst = c.EscapeUnicode().AppendTo(dst)
			continue
		}
		dst = c.EscapeDefault().AppendTo(dst)
	}

	return dst
}

// LenDefault returns len(Default(s)).
func LenDefault(s string) int {
	n := 0
	for c, ok := range scalars(s) {
		if !ok {
			n += c.EscapeUnicode().Len()
			continue
		}
		n += c.EscapeDefault().LenUTF8()
	}

	return n
}

// Debug escapes s for diagnostic output. Characters accepted by the oracle
// (printable.Default unless WithOracle is given) are kept as is.
func Debug(s string, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}

	return build(func(dst []byte) []byte {
		return appendDebug(dst, s, cfg)
	}), nil
}

// LenDebug returns the length in bytes of Debug(s, opts...).
func LenDebug(s string, opts ...Option) (int, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}

	n := 0
	for c, ok := range scalars(s) {
		if !ok {
			n += c.EscapeUnicode().Len()
			continue
		}
		n += c.EscapeDebugWith(cfg.oracle).LenUTF8()
	}

	return n, nil
}

// Quote returns Debug(s, opts...) surrounded by the quote delimiter, which is
// '"' unless WithQuote is given.
func Quote(s string, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}

	bb := pool.GetEscapeBuffer()
	defer pool.PutEscapeBuffer(bb)

	_ = bb.WriteByte(cfg.quote)
	bb.B = appendDebug(bb.B, s, cfg)
	_ = bb.WriteByte(cfg.quote)

	return string(bb.B), nil
}

func appendDebug(dst []byte, s string, cfg *config) []byte {
	for c, ok := range scalars(s) {
		if !ok {
			dst = c.EscapeUnicode().AppendTo(dst)
			continue
		}
		dst = c.EscapeDebugWith(cfg.oracle).AppendTo(dst)
	}

	return dst
}

// build runs fill against a pooled buffer and returns a copy of the result.
func build(fill func(dst []byte) []byte) string {
	bb := pool.GetEscapeBuffer()
	defer pool.PutEscapeBuffer(bb)

	bb.B = fill(bb.B)

	return string(bb.B)
}
