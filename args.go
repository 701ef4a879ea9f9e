package printf

import "fmt"

// Args is the argument cursor: a typed, position-tracking view over the
// values supplied to one render call. Each directive consumes exactly
// one value, plus one for every '*' width or precision.
type Args struct {
	vals []any
	pos  int
}

// NewArgs builds an argument cursor over vals.
func NewArgs(vals ...any) *Args {
	return &Args{vals: vals}
}

// Remaining reports how many values have not been consumed yet.
func (a *Args) Remaining() int {
	return len(a.vals) - a.pos
}

func (a *Args) next() (any, error) {
	if a.pos >= len(a.vals) {
		return nil, fmt.Errorf("%w: want value #%d, have %d", ErrArgumentCount, a.pos+1, len(a.vals))
	}
	v := a.vals[a.pos]
	a.pos++
	return v, nil
}

func (a *Args) badType(v any, want string) error {
	return fmt.Errorf("%w: value #%d is %T, want %s", ErrArgumentType, a.pos, v, want)
}

// Int fetches the next value as a signed 64-bit integer. Any Go integer
// kind is accepted at full width; narrowing to the directive's length
// happens in the renderer, mirroring C variadic promotion.
func (a *Args) Int() (int64, error) {
	v, err := a.next()
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case uintptr:
		return int64(n), nil
	}
	return 0, a.badType(v, "integer")
}

// Uint fetches the next value reinterpreted as an unsigned 64-bit
// integer.
func (a *Args) Uint() (uint64, error) {
	n, err := a.Int()
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}

// Float fetches the next value as a float64.
func (a *Args) Float() (float64, error) {
	v, err := a.next()
	if err != nil {
		return 0, err
	}
	switch f := v.(type) {
	case float64:
		return f, nil
	case float32:
		return float64(f), nil
	}
	return 0, a.badType(v, "float")
}

// Str fetches the next value as a byte string.
func (a *Args) Str() (string, error) {
	v, err := a.next()
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return "", a.badType(v, "string")
}

// Char fetches the next value as a single byte. Integer kinds are
// truncated the way C truncates the promoted int argument of %c; a
// one-byte string is accepted as a convenience.
func (a *Args) Char() (byte, error) {
	v, err := a.next()
	if err != nil {
		return 0, err
	}
	switch c := v.(type) {
	case byte:
		return c, nil
	case rune:
		return byte(c), nil
	case int:
		return byte(c), nil
	case int64:
		return byte(c), nil
	case string:
		if len(c) == 1 {
			return c[0], nil
		}
	}
	return 0, a.badType(v, "char")
}
