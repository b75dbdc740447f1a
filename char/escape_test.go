package char

import (
	"slices"
	"strconv"
	"testing"
	"unicode"

	"github.com/arloliu/runekit/printable"
	"github.com/stretchr/testify/require"
)

// generator is the common surface of the three escape generators.
type generator interface {
	Next() (Scalar, bool)
	Len() int
}

// drain consumes g, checking that Len drops by exactly one per character.
func drain(t *testing.T, g generator) string {
	t.Helper()

	var out []rune
	for {
		before := g.Len()
		c, ok := g.Next()
		if !ok {
			require.Equal(t, 0, before, "exhausted with Len %d", before)
			break
		}
		require.Equal(t, before-1, g.Len(), "Len after %q", string(out))
		out = append(out, rune(c))
	}

	// exhaustion is permanent
	for range 3 {
		_, ok := g.Next()
		require.False(t, ok)
		require.Equal(t, 0, g.Len())
	}

	return string(out)
}

func TestEscapeUnicode(t *testing.T) {
	tests := []struct {
		c    Scalar
		want string
	}{
		{0x0, `\u{0}`},
		{0x1, `\u{1}`},
		{0xF, `\u{f}`},
		{0x10, `\u{10}`},
		{'a', `\u{61}`},
		{0xFF, `\u{ff}`},
		{0x100, `\u{100}`},
		{0xFFFF, `\u{ffff}`},
		{0x10000, `\u{10000}`},
		{0x1F600, `\u{1f600}`},
		{0x10FFFF, `\u{10ffff}`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			e := tt.c.EscapeUnicode()
			require.Equal(t, len(tt.want), e.Len())
			require.Equal(t, tt.want, e.String())
			require.Equal(t, tt.want, drain(t, &e))
		})
	}
}

func TestEscapeUnicode_Zero(t *testing.T) {
	e := Scalar(0).EscapeUnicode()
	require.Equal(t, 5, e.Len())

	var got []Scalar
	for c, ok := e.Next(); ok; c, ok = e.Next() {
		got = append(got, c)
	}
	require.Equal(t, []Scalar{'\\', 'u', '{', '0', '}'}, got)
}

func TestEscapeUnicode_LenIsClosedForm(t *testing.T) {
	e := Scalar(0x1F600).EscapeUnicode()

	// Backslash with 4 digits still to go after the first: 4 + 5
	require.Equal(t, 4, e.hexDigitIdx)
	require.Equal(t, unicodeBackslash, e.state)
	require.Equal(t, 9, e.Len())

	e.Next() // '\'
	e.Next() // 'u'
	e.Next() // '{'
	require.Equal(t, unicodeValue, e.state)
	require.Equal(t, 6, e.Len())

	for e.hexDigitIdx > 0 {
		idx := e.hexDigitIdx
		e.Next()
		require.Equal(t, idx-1, e.hexDigitIdx)
	}
	require.Equal(t, unicodeValue, e.state)
	require.Equal(t, 2, e.Len())

	e.Next() // last digit
	require.Equal(t, unicodeRightBrace, e.state)
	require.Equal(t, 0, e.hexDigitIdx)
	require.Equal(t, 1, e.Len())
}

func TestEscapeUnicode_CloneIsIndependent(t *testing.T) {
	e := Scalar(0x20AC).EscapeUnicode()
	e.Next()
	e.Next()

	saved := e
	require.Equal(t, `{20ac}`, drain(t, &e))
	require.Equal(t, 6, saved.Len())
	require.Equal(t, `{20ac}`, saved.String())
	require.Equal(t, `{20ac}`, drain(t, &saved))
}

func TestEscapeUnicode_Last(t *testing.T) {
	e := Scalar(0xAB).EscapeUnicode()
	for e.Len() > 0 {
		last, ok := e.Last()
		require.True(t, ok)

		rest := e.String()
		require.Equal(t, Scalar(rest[len(rest)-1]), last)
		e.Next()
	}

	_, ok := e.Last()
	require.False(t, ok)
}

func TestEscapeUnicode_Nth(t *testing.T) {
	const full = `\u{1f600}`

	for n := range len(full) + 2 {
		e := Scalar(0x1F600).EscapeUnicode()
		c, ok := e.Nth(n)
		if n >= len(full) {
			require.False(t, ok)
			require.Equal(t, 0, e.Len())
			continue
		}
		require.True(t, ok)
		require.Equal(t, Scalar(full[n]), c)
		require.Equal(t, len(full)-n-1, e.Len())
		require.Equal(t, full[n+1:], e.String())
	}

	e := Scalar('a').EscapeUnicode()
	c, ok := e.Nth(-3)
	require.True(t, ok)
	require.Equal(t, Scalar('\\'), c)
}

func TestEscapeUnicode_ZeroValueIsExhausted(t *testing.T) {
	var e EscapeUnicode
	require.Equal(t, 0, e.Len())
	_, ok := e.Next()
	require.False(t, ok)
	require.Empty(t, e.String())
}

func TestEscapeUnicode_All(t *testing.T) {
	e := Scalar(0x3A9).EscapeUnicode()
	want := []Scalar{'\\', 'u', '{', '3', 'a', '9', '}'}

	require.Equal(t, want, slices.Collect(e.All()))
	// the iterator works on a copy
	require.Equal(t, want, slices.Collect(e.All()))
	require.Equal(t, 7, e.Len())

	var firstTwo []Scalar
	for c := range e.All() {
		firstTwo = append(firstTwo, c)
		if len(firstTwo) == 2 {
			break
		}
	}
	require.Equal(t, want[:2], firstTwo)
}

func TestEscapeDefault(t *testing.T) {
	tests := []struct {
		name string
		c    Scalar
		want string
	}{
		{"tab", '\t', `\t`},
		{"carriage return", '\r', `\r`},
		{"line feed", '\n', `\n`},
		{"backslash", '\\', `\\`},
		{"single quote", '\'', `\'`},
		{"double quote", '"', `\"`},
		{"letter", 'a', `a`},
		{"space", ' ', ` `},
		{"tilde", '~', `~`},
		{"nul", 0x00, `\u{0}`},
		{"bell", 0x07, `\u{7}`},
		{"unit separator", 0x1F, `\u{1f}`},
		{"delete", 0x7F, `\u{7f}`},
		{"latin-1", 'é', `\u{e9}`},
		{"emoji", 0x1F600, `\u{1f600}`},
		{"max", 0x10FFFF, `\u{10ffff}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.c.EscapeDefault()
			require.Equal(t, len(tt.want), e.Len())
			require.Equal(t, tt.want, e.String())
			require.Equal(t, tt.want, drain(t, &e))
		})
	}
}

func TestEscapeDefault_MatchesEscapeUnicodeOutsideASCII(t *testing.T) {
	for _, c := range []Scalar{0x80, 0xA0, 0x2028, 0xFEFF, 0xFFFD, 0xE0001} {
		require.Equal(t, c.EscapeUnicode().String(), c.EscapeDefault().String())
	}
}

func TestEscapeDefault_Nth(t *testing.T) {
	t.Run("backslash pair", func(t *testing.T) {
		e := Scalar('\n').EscapeDefault()
		c, ok := e.Nth(0)
		require.True(t, ok)
		require.Equal(t, Scalar('\\'), c)
		require.Equal(t, 1, e.Len())

		e = Scalar('\n').EscapeDefault()
		c, ok = e.Nth(1)
		require.True(t, ok)
		require.Equal(t, Scalar('n'), c)
		require.Equal(t, 0, e.Len())

		e = Scalar('\n').EscapeDefault()
		_, ok = e.Nth(2)
		require.False(t, ok)
		require.Equal(t, 0, e.Len())
	})

	t.Run("single char", func(t *testing.T) {
		e := Scalar('q').EscapeDefault()
		c, ok := e.Nth(0)
		require.True(t, ok)
		require.Equal(t, Scalar('q'), c)

		e = Scalar('q').EscapeDefault()
		_, ok = e.Nth(1)
		require.False(t, ok)
		require.Equal(t, 0, e.Len())
	})

	t.Run("after first step", func(t *testing.T) {
		e := Scalar('"').EscapeDefault()
		e.Next()
		c, ok := e.Nth(0)
		require.True(t, ok)
		require.Equal(t, Scalar('"'), c)
		_, ok = e.Nth(0)
		require.False(t, ok)
	})

	t.Run("delegated", func(t *testing.T) {
		e := Scalar(0x1F600).EscapeDefault()
		c, ok := e.Nth(4)
		require.True(t, ok)
		require.Equal(t, Scalar('f'), c)
		require.Equal(t, `600}`, e.String())

		c, ok = e.Nth(3)
		require.True(t, ok)
		require.Equal(t, Scalar('}'), c)
		_, ok = e.Nth(0)
		require.False(t, ok)
	})
}

func TestEscapeDefault_Last(t *testing.T) {
	tests := []struct {
		c    Scalar
		want Scalar
	}{
		{'\t', 't'},
		{'\\', '\\'},
		{'a', 'a'},
		{0x07, '}'},
	}

	for _, tt := range tests {
		e := tt.c.EscapeDefault()
		got, ok := e.Last()
		require.True(t, ok)
		require.Equal(t, tt.want, got)
		require.Equal(t, len(tt.c.EscapeDefault().String()), e.Len(), "Last must not consume")
	}

	e := Scalar('a').EscapeDefault()
	e.Next()
	_, ok := e.Last()
	require.False(t, ok)
}

func TestEscapeDefault_CloneIsIndependent(t *testing.T) {
	e := Scalar('\t').EscapeDefault()
	saved := e

	require.Equal(t, `\t`, drain(t, &e))
	require.Equal(t, 2, saved.Len())
	require.Equal(t, `\t`, saved.String())
}

func TestEscapeDefault_All(t *testing.T) {
	e := Scalar('\'').EscapeDefault()
	require.Equal(t, []Scalar{'\\', '\''}, slices.Collect(e.All()))
	require.Equal(t, 2, e.Len())
}

func TestEscapeDefault_AppendTo(t *testing.T) {
	dst := []byte("<")
	dst = Scalar('\r').EscapeDefault().AppendTo(dst)
	dst = Scalar('x').EscapeDefault().AppendTo(dst)
	dst = Scalar(0x80).EscapeDefault().AppendTo(dst)
	require.Equal(t, `<\rx\u{80}`, string(dst))
}

func TestEscapeDebug(t *testing.T) {
	tests := []struct {
		name string
		c    Scalar
		want string
	}{
		{"tab", '\t', `\t`},
		{"line feed", '\n', `\n`},
		{"double quote", '"', `\"`},
		{"single quote", '\'', `\'`},
		{"backslash", '\\', `\\`},
		{"letter", 'a', `a`},
		{"latin-1 letter", 'é', `é`},
		{"cjk", '漢', `漢`},
		{"emoji", 0x1F600, "\U0001F600"},
		{"nul", 0x00, `\u{0}`},
		{"escape", 0x1B, `\u{1b}`},
		{"delete", 0x7F, `\u{7f}`},
		{"no-break space", 0xA0, `\u{a0}`},
		{"zero width joiner", 0x200D, `\u{200d}`},
		{"line separator", 0x2028, `\u{2028}`},
		{"bom", 0xFEFF, `\u{feff}`},
		{"private use", 0xE000, `\u{e000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.c.EscapeDebug()
			require.Equal(t, tt.want, e.String())
			require.Equal(t, len([]rune(tt.want)), e.Len())
			require.Equal(t, tt.want, drain(t, &e))
		})
	}
}

func TestEscapeDebug_OracleDecides(t *testing.T) {
	never := func(rune) bool { return false }
	always := func(rune) bool { return true }

	for _, c := range []Scalar{0x01, 0x85, 'a', 0x1F600} {
		require.Equal(t, c.EscapeUnicode().String(), c.EscapeDebugWith(never).String())
		require.Equal(t, string(rune(c)), c.EscapeDebugWith(always).String())
	}

	// the fixed escapes win over any oracle
	require.Equal(t, `\n`, Scalar('\n').EscapeDebugWith(always).String())
	require.Equal(t, `\\`, Scalar('\\').EscapeDebugWith(never).String())

	// ASCII oracle reproduces default escaping
	for c := Scalar(0); c < 0x300; c++ {
		require.Equal(t, c.EscapeDefault().String(), c.EscapeDebugWith(printable.ASCII).String())
	}

	// nil falls back to the default oracle
	require.Equal(t, Scalar('é').EscapeDebug().String(), Scalar('é').EscapeDebugWith(nil).String())
}

func TestEscapeDebug_AgreesWithUnicodeIsPrint(t *testing.T) {
	for c := Scalar(0); c < 0x3000; c++ {
		if c >= surrogateMin && c <= surrogateMax {
			continue
		}
		e := c.EscapeDebug()
		switch c {
		case '\t', '\r', '\n', '\\', '\'', '"':
			require.Equal(t, 2, e.Len())
		default:
			if unicode.IsPrint(rune(c)) {
				require.Equal(t, 1, e.Len(), "U+%04X", rune(c))
			} else {
				require.Equal(t, c.EscapeUnicode().Len(), e.Len(), "U+%04X", rune(c))
			}
		}
	}
}

func TestEscapeDebug_Forwarding(t *testing.T) {
	e := Scalar(0x0B).EscapeDebug()
	last, ok := e.Last()
	require.True(t, ok)
	require.Equal(t, Scalar('}'), last)

	require.Equal(t, []Scalar{'\\', 'u', '{', 'b', '}'}, slices.Collect(e.All()))

	c, ok := e.Nth(3)
	require.True(t, ok)
	require.Equal(t, Scalar('b'), c)
	require.Equal(t, "x}", string(e.AppendTo([]byte("x"))))
}

func TestEscape_LenUTF8(t *testing.T) {
	for _, c := range []Scalar{0, '\t', '\'', 'a', 0x7F, 0xE9, 0x200B, 0x6F22, 0xFFFD, 0x1F600, MaxScalar} {
		def := c.EscapeDefault()
		require.Equal(t, len(def.String()), def.LenUTF8(), "default %U", c)
		require.Equal(t, def.Len(), def.LenUTF8(), "default output is ASCII for %U", c)

		dbg := c.EscapeDebug()
		require.Equal(t, len(dbg.String()), dbg.LenUTF8(), "debug %U", c)
	}

	// a kept character counts its UTF-8 bytes, not one character
	e := Scalar(0x1F600).EscapeDebug()
	require.Equal(t, 1, e.Len())
	require.Equal(t, 4, e.LenUTF8())
	e.Next()
	require.Zero(t, e.LenUTF8())
}

// TestEscapeDebug_QuoteCompat compares the per-character debug escape with
// strconv.Quote for characters where both formats print the bare character.
func TestEscapeDebug_QuoteCompat(t *testing.T) {
	for _, c := range []Scalar{'a', 'Z', '0', ' ', 'é', '漢', 0x1F600} {
		quoted := strconv.Quote(string(rune(c)))
		require.Equal(t, quoted[1:len(quoted)-1], c.EscapeDebug().String())
	}
}

func BenchmarkEscapeUnicode(b *testing.B) {
	for b.Loop() {
		e := Scalar(0x1F600).EscapeUnicode()
		for _, ok := e.Next(); ok; _, ok = e.Next() {
		}
	}
}

func BenchmarkEscapeDebug_String(b *testing.B) {
	chars := []Scalar{'a', '\n', 0x07, 'é', 0x1F600}

	b.ResetTimer()
	for b.Loop() {
		for _, c := range chars {
			_ = c.EscapeDebug().String()
		}
	}
}
