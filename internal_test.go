package printf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseSpec runs the directive scanner over format (which includes the
// leading '%') without rendering anything.
func parseSpec(t *testing.T, format string, vals ...any) (convSpec, error) {
	t.Helper()
	r := renderState{format: format, fpos: 1, args: NewArgs(vals...), out: sink{buf: make([]byte, 64)}}
	return r.scanSpec()
}

func TestScanSpecDefaults(t *testing.T) {
	t.Parallel()
	cs, err := parseSpec(t, "%d")
	require.NoError(t, err)
	assert.Equal(t, -1, cs.width)
	assert.Equal(t, -1, cs.precision)
	assert.Equal(t, lengthDefault, cs.length)
	assert.Equal(t, verbDecimal, cs.verb)
}

func TestScanSpecFlagsIdempotent(t *testing.T) {
	t.Parallel()
	once, err := parseSpec(t, "%-+#0d")
	require.NoError(t, err)
	twice, err := parseSpec(t, "%--++##00d")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestScanSpecSpaceYieldsToForceSign(t *testing.T) {
	t.Parallel()
	cs, err := parseSpec(t, "%+ d")
	require.NoError(t, err)
	assert.True(t, cs.forceSign)
	assert.False(t, cs.spacePrefix)
}

func TestScanSpecWidthAndPrecision(t *testing.T) {
	t.Parallel()
	cs, err := parseSpec(t, "%12.4f")
	require.NoError(t, err)
	assert.Equal(t, 12, cs.width)
	assert.Equal(t, 4, cs.precision)
	assert.Equal(t, verbFixedLower, cs.verb)
}

func TestScanSpecBareDotMeansZeroPrecision(t *testing.T) {
	t.Parallel()
	cs, err := parseSpec(t, "%.d")
	require.NoError(t, err)
	assert.Equal(t, 0, cs.precision)
}

func TestScanSpecStarWidth(t *testing.T) {
	t.Parallel()
	cs, err := parseSpec(t, "%*d", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cs.width)
	assert.False(t, cs.leftJustify)
}

func TestScanSpecNegativeStarWidth(t *testing.T) {
	t.Parallel()
	cs, err := parseSpec(t, "%*d", -7)
	require.NoError(t, err)
	assert.Equal(t, 7, cs.width)
	assert.True(t, cs.leftJustify)
}

func TestScanSpecNegativeStarPrecisionUnspecified(t *testing.T) {
	t.Parallel()
	cs, err := parseSpec(t, "%.*f", -3)
	require.NoError(t, err)
	assert.Equal(t, -1, cs.precision)
}

func TestScanSpecLengthModifiers(t *testing.T) {
	t.Parallel()
	cases := map[string]lengthMod{
		"%d":   lengthDefault,
		"%hd":  lengthHalf,
		"%hhd": lengthQuarter,
		"%ld":  lengthLong,
		"%hld": lengthHalfLong,
	}
	for format, want := range cases {
		cs, err := parseSpec(t, format)
		require.NoError(t, err, "format %q", format)
		assert.Equal(t, want, cs.length, "format %q", format)
	}
}

func TestScanSpecDoubleEllStopsConsuming(t *testing.T) {
	t.Parallel()
	// The second l does not combine; it lands on the specifier state.
	_, err := parseSpec(t, "%lld")
	assert.ErrorIs(t, err, ErrUnsupportedSpecifier)
}

func TestScanSpecOutOfScopeSpecifiers(t *testing.T) {
	t.Parallel()
	for _, format := range []string{"%a", "%A", "%p", "%n", "%z"} {
		_, err := parseSpec(t, format)
		assert.ErrorIs(t, err, ErrUnsupportedSpecifier, "format %q", format)
	}
}

func TestScanSpecTruncatedDirective(t *testing.T) {
	t.Parallel()
	for _, format := range []string{"%", "%-05", "%.3", "%h"} {
		_, err := parseSpec(t, format)
		assert.ErrorIs(t, err, ErrMalformedDirective, "format %q", format)
	}
}

// --- Justification engine ---

func TestJustifyRightShift(t *testing.T) {
	t.Parallel()
	s := sink{buf: make([]byte, 16)}
	s.writeByte('a')
	s.writeByte('b')
	cs := convSpec{width: 5, precision: -1}
	s.justify(0, 0, &cs)
	assert.Equal(t, "   ab", string(s.buf[:s.pos]))
}

func TestJustifyLeft(t *testing.T) {
	t.Parallel()
	s := sink{buf: make([]byte, 16)}
	s.writeByte('a')
	s.writeByte('b')
	cs := convSpec{width: 5, precision: -1, leftJustify: true}
	s.justify(0, 0, &cs)
	assert.Equal(t, "ab   ", string(s.buf[:s.pos]))
}

func TestJustifyZeroPadKeepsSignPinned(t *testing.T) {
	t.Parallel()
	s := sink{buf: make([]byte, 16)}
	s.writeByte('+')
	s.writeByte('1')
	s.writeByte('2')
	cs := convSpec{width: 5, precision: -1, zeroPad: true, verb: verbDecimal}
	s.justify(1, 1, &cs)
	assert.Equal(t, "+0012", string(s.buf[:s.pos]))
}

func TestJustifySpacePadMovesSign(t *testing.T) {
	t.Parallel()
	s := sink{buf: make([]byte, 16)}
	s.writeByte('+')
	s.writeByte('1')
	s.writeByte('2')
	cs := convSpec{width: 5, precision: -1, verb: verbDecimal}
	s.justify(1, 1, &cs)
	assert.Equal(t, "  +12", string(s.buf[:s.pos]))
}

func TestJustifyStringNeverZeroPads(t *testing.T) {
	t.Parallel()
	s := sink{buf: make([]byte, 16)}
	s.writeByte('h')
	s.writeByte('i')
	cs := convSpec{width: 4, precision: -1, zeroPad: true, verb: verbString}
	s.justify(0, 0, &cs)
	assert.Equal(t, "  hi", string(s.buf[:s.pos]))
}

func TestJustifyOverflowAbandonsShift(t *testing.T) {
	t.Parallel()
	s := sink{buf: make([]byte, 6)} // five writable bytes
	s.writeByte('a')
	s.writeByte('b')
	cs := convSpec{width: 10, precision: -1}
	s.justify(0, 0, &cs)
	assert.True(t, s.full)
	assert.Equal(t, "ab", string(s.buf[:2]))
}

func TestSinkReservesTerminatorByte(t *testing.T) {
	t.Parallel()
	s := sink{buf: make([]byte, 3)}
	assert.True(t, s.writeByte('x'))
	assert.True(t, s.writeByte('y'))
	assert.False(t, s.writeByte('z'))
	assert.True(t, s.terminate())
	assert.Equal(t, byte(0), s.buf[2])
}

// --- Length truncation ---

func TestTruncSigned(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(-128), truncSigned(128, lengthQuarter))
	assert.Equal(t, int64(-32768), truncSigned(32768, lengthHalf))
	assert.Equal(t, int64(5), truncSigned(1<<32+5, lengthDefault))
	assert.Equal(t, int64(5), truncSigned(1<<32+5, lengthHalfLong))
	assert.Equal(t, int64(1<<32+5), truncSigned(1<<32+5, lengthLong))
}

func TestTruncUnsigned(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(44), truncUnsigned(300, lengthQuarter))
	assert.Equal(t, uint64(9), truncUnsigned(1<<16+9, lengthHalf))
	assert.Equal(t, uint64(7), truncUnsigned(1<<32+7, lengthHalfLong))
	assert.Equal(t, uint64(1)<<63, truncUnsigned(1<<63, lengthLong))
}

// --- Argument cursor ---

func TestArgsExhausted(t *testing.T) {
	t.Parallel()
	_, err := NewArgs().Int()
	assert.ErrorIs(t, err, ErrArgumentCount)
}

func TestArgsTypeMismatch(t *testing.T) {
	t.Parallel()
	_, err := NewArgs("not a number").Int()
	assert.ErrorIs(t, err, ErrArgumentType)
	_, err = NewArgs(42).Str()
	assert.ErrorIs(t, err, ErrArgumentType)
	_, err = NewArgs("x").Float()
	assert.ErrorIs(t, err, ErrArgumentType)
}

func TestArgsRemaining(t *testing.T) {
	t.Parallel()
	a := NewArgs(1, 2)
	_, err := a.Int()
	require.NoError(t, err)
	assert.Equal(t, 1, a.Remaining())
}

func TestArgsCharForms(t *testing.T) {
	t.Parallel()
	for _, v := range []any{byte('a'), rune('a'), int('a'), "a"} {
		c, err := NewArgs(v).Char()
		require.NoError(t, err, "value %T", v)
		assert.Equal(t, byte('a'), c)
	}
}

func TestArgsStrAcceptsBytes(t *testing.T) {
	t.Parallel()
	s, err := NewArgs([]byte("hi")).Str()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}
