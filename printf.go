package printf

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedSpecifier = errors.New("unsupported specifier")
	ErrMalformedDirective   = errors.New("malformed directive")
	ErrBufferExhausted      = errors.New("output buffer exhausted")
	ErrArgumentCount        = errors.New("not enough arguments")
	ErrArgumentType         = errors.New("argument type mismatch")
)

// renderState threads the scan cursor, the output sink, and the
// argument cursor through one render call. Nothing in it survives the
// call, which keeps Render reentrant.
type renderState struct {
	format string
	fpos   int
	out    sink
	args   *Args
}

// Render formats format with the values behind args into dst and
// returns the number of payload bytes written. The output is always
// NUL-terminated within dst; one byte of capacity is reserved for the
// terminator, which keeps the last slot on truncation.
//
// When dst fills up the call stops early with the bytes that fit and
// [ErrBufferExhausted]; the partial output is still terminated and
// valid, so callers that accept truncation may ignore that error.
// Unsupported and malformed directives are hard stops. Render never
// allocates.
func Render(dst []byte, format string, args *Args) (int, error) {
	r := renderState{format: format, out: sink{buf: dst}, args: args}
	for r.fpos < len(r.format) && !r.out.full {
		if err := r.next(); err != nil {
			r.out.terminate()
			return r.out.pos, err
		}
	}
	if !r.out.terminate() {
		return r.out.pos, fmt.Errorf("%w: no room for terminator in %d byte(s)", ErrBufferExhausted, len(dst))
	}
	if r.out.full {
		return r.out.pos, fmt.Errorf("%w: truncated to %d byte(s)", ErrBufferExhausted, r.out.pos)
	}
	return r.out.pos, nil
}

// Format renders format with vals into dst. It is a convenience wrapper
// around [Render] that builds the argument cursor inline.
func Format(dst []byte, format string, vals ...any) (int, error) {
	return Render(dst, format, NewArgs(vals...))
}

// next consumes one literal byte or one full %-directive: parse,
// argument fetch, render, justify.
func (r *renderState) next() error {
	c := r.format[r.fpos]
	r.fpos++
	if c != '%' {
		r.out.writeByte(c)
		return nil
	}
	if r.fpos < len(r.format) && r.format[r.fpos] == '%' {
		r.fpos++
		r.out.writeByte('%')
		return nil
	}
	cs, err := r.scanSpec()
	if err != nil {
		return err
	}
	switch cs.verb {
	case verbDecimal:
		return r.renderSigned(&cs)
	case verbUnsigned:
		return r.renderUnsigned(&cs, 10, lowerDigits, "")
	case verbOctal:
		return r.renderUnsigned(&cs, 8, lowerDigits, "")
	case verbHexLower:
		return r.renderUnsigned(&cs, 16, lowerDigits, "0x")
	case verbHexUpper:
		return r.renderUnsigned(&cs, 16, upperDigits, "0X")
	case verbChar:
		return r.renderChar(&cs)
	case verbString:
		return r.renderString(&cs)
	default:
		return r.renderFloat(&cs)
	}
}
