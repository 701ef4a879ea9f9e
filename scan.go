package printf

import "fmt"

type lengthMod int

const (
	lengthDefault lengthMod = iota
	lengthHalf                // h: 16-bit
	lengthQuarter             // hh: 8-bit
	lengthLong                // l: 64-bit
	lengthHalfLong            // hl: compatibility alias for the default width
)

type verbKind int

const (
	verbNone verbKind = iota
	verbDecimal
	verbUnsigned
	verbOctal
	verbHexLower
	verbHexUpper
	verbFixedLower
	verbFixedUpper
	verbSciLower
	verbSciUpper
	verbShortLower
	verbShortUpper
	verbChar
	verbString
)

// convSpec is the parsed form of one %-directive. It is built fresh per
// directive and discarded after rendering.
type convSpec struct {
	leftJustify bool
	forceSign   bool
	spacePrefix bool
	altForm     bool
	zeroPad     bool

	width     int // -1 when unspecified
	precision int // -1 when unspecified; 0 is an explicit zero
	length    lengthMod
	verb      verbKind
}

// scanSpec parses the directive body following an already-consumed '%'.
// The scan cursor ends on the byte after the specifier. States run in
// fixed order (flags, width, precision, length, specifier) and each
// consumes greedily before falling through to the next.
func (r *renderState) scanSpec() (convSpec, error) {
	cs := convSpec{width: -1, precision: -1}

	// Flags: order-free and idempotent.
flags:
	for r.fpos < len(r.format) {
		switch r.format[r.fpos] {
		case '-':
			cs.leftJustify = true
		case '+':
			cs.forceSign = true
		case ' ':
			cs.spacePrefix = true
		case '#':
			cs.altForm = true
		case '0':
			cs.zeroPad = true
		default:
			break flags
		}
		r.fpos++
	}
	if cs.forceSign {
		// An explicit sign wins over the blank.
		cs.spacePrefix = false
	}

	// Width: a digit run, or '*' pulling the next integer argument. A
	// negative '*' width means left-justify at the absolute value.
	if r.fpos < len(r.format) && r.format[r.fpos] == '*' {
		r.fpos++
		w, err := r.args.Int()
		if err != nil {
			return cs, err
		}
		if w < 0 {
			cs.leftJustify = true
			w = -w
		}
		cs.width = int(w)
	} else if n, ok := r.scanNumber(); ok {
		cs.width = n
	}

	// Precision: '.' then a digit run or '*'. A bare '.' is an explicit
	// zero; a negative '*' precision means unspecified.
	if r.fpos < len(r.format) && r.format[r.fpos] == '.' {
		r.fpos++
		if r.fpos < len(r.format) && r.format[r.fpos] == '*' {
			r.fpos++
			p, err := r.args.Int()
			if err != nil {
				return cs, err
			}
			if p >= 0 {
				cs.precision = int(p)
			}
		} else if n, ok := r.scanNumber(); ok {
			cs.precision = n
		} else {
			cs.precision = 0
		}
	}

	// Length: longest match wins. A second h upgrades to hh; an l after
	// h forms the hl compatibility combination. Anything else stops the
	// state without consuming.
length:
	for r.fpos < len(r.format) {
		switch r.format[r.fpos] {
		case 'h':
			switch cs.length {
			case lengthDefault:
				cs.length = lengthHalf
			case lengthHalf:
				cs.length = lengthQuarter
			default:
				break length
			}
		case 'l':
			switch cs.length {
			case lengthDefault:
				cs.length = lengthLong
			case lengthHalf:
				cs.length = lengthHalfLong
			default:
				break length
			}
		default:
			break length
		}
		r.fpos++
	}

	if r.fpos >= len(r.format) {
		return cs, fmt.Errorf("%w: format ends inside %%-directive", ErrMalformedDirective)
	}
	c := r.format[r.fpos]
	r.fpos++
	switch c {
	case 'd', 'i':
		cs.verb = verbDecimal
	case 'u':
		cs.verb = verbUnsigned
	case 'o':
		cs.verb = verbOctal
	case 'x':
		cs.verb = verbHexLower
	case 'X':
		cs.verb = verbHexUpper
	case 'f':
		cs.verb = verbFixedLower
	case 'F':
		cs.verb = verbFixedUpper
	case 'e':
		cs.verb = verbSciLower
	case 'E':
		cs.verb = verbSciUpper
	case 'g':
		cs.verb = verbShortLower
	case 'G':
		cs.verb = verbShortUpper
	case 'c':
		cs.verb = verbChar
	case 's':
		cs.verb = verbString
	case 'a', 'A', 'p', 'n':
		return cs, fmt.Errorf("%w: %%%c is out of scope", ErrUnsupportedSpecifier, c)
	default:
		return cs, fmt.Errorf("%w: %%%c", ErrUnsupportedSpecifier, c)
	}
	return cs, nil
}

// scanNumber reads a run of decimal digits at the scan cursor. The
// cursor does not move when no digit is present.
func (r *renderState) scanNumber() (int, bool) {
	n, found := 0, false
	for r.fpos < len(r.format) {
		c := r.format[r.fpos]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		found = true
		r.fpos++
	}
	return n, found
}
