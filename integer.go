package printf

// Digit lookup tables, indexed by digit value; the table picks the hex
// case.
const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// truncUnsigned wraps v to the bit width the length modifier selects.
// The hl form is a compatibility alias for the default width.
func truncUnsigned(v uint64, length lengthMod) uint64 {
	switch length {
	case lengthQuarter:
		return uint64(uint8(v))
	case lengthHalf:
		return uint64(uint16(v))
	case lengthLong:
		return v
	default:
		return uint64(uint32(v))
	}
}

// truncSigned wraps v to the bit width the length modifier selects,
// keeping two's-complement semantics.
func truncSigned(v int64, length lengthMod) int64 {
	switch length {
	case lengthQuarter:
		return int64(int8(v))
	case lengthHalf:
		return int64(int16(v))
	case lengthLong:
		return v
	default:
		return int64(int32(v))
	}
}

// writeSign emits the sign byte per the shared sign policy and reports
// how many prefix bytes it wrote.
func (r *renderState) writeSign(cs *convSpec, neg bool) int {
	switch {
	case neg:
		r.out.writeByte('-')
	case cs.forceSign:
		r.out.writeByte('+')
	case cs.spacePrefix:
		r.out.writeByte(' ')
	default:
		return 0
	}
	return 1
}

// writeDigits emits the magnitude least significant digit first; the
// caller reverses the span. Precision is the minimum digit count,
// padded with zeros. A zero value under an explicit zero precision
// produces no digits at all. The alternate octal form appends the
// leading zero unless the most significant digit already is one.
func (r *renderState) writeDigits(v, base uint64, digits string, cs *convSpec) {
	n := 0
	if v != 0 || cs.precision != 0 {
		for {
			r.out.writeByte(digits[v%base])
			n++
			v /= base
			if v == 0 {
				break
			}
		}
	}
	for ; n < cs.precision; n++ {
		r.out.writeByte('0')
	}
	if cs.altForm && base == 8 && (n == 0 || r.out.lastByte() != '0') {
		r.out.writeByte('0')
	}
}

// renderSigned handles %d and %i.
func (r *renderState) renderSigned(cs *convSpec) error {
	v, err := r.args.Int()
	if err != nil {
		return err
	}
	v = truncSigned(v, cs.length)

	neg := v < 0
	mag := uint64(v)
	if neg {
		// Unsigned negation is exact for the two's-complement minimum.
		mag = -mag
	}

	prefix := r.writeSign(cs, neg)
	start := r.out.pos
	r.writeDigits(mag, 10, lowerDigits, cs)
	r.out.reverse(start)
	if cs.precision >= 0 {
		// Precision supplies the leading zeros; the 0 flag is ignored.
		cs.zeroPad = false
	}
	r.out.justify(start, prefix, cs)
	return nil
}

// renderUnsigned handles %u, %o, %x and %X. hexPrefix is the alternate
// form marker, written only for non-zero values.
func (r *renderState) renderUnsigned(cs *convSpec, base uint64, digits, hexPrefix string) error {
	v, err := r.args.Uint()
	if err != nil {
		return err
	}
	v = truncUnsigned(v, cs.length)

	prefix := 0
	if cs.altForm && hexPrefix != "" && v != 0 {
		for i := 0; i < len(hexPrefix); i++ {
			if r.out.writeByte(hexPrefix[i]) {
				prefix++
			}
		}
	}
	start := r.out.pos
	r.writeDigits(v, base, digits, cs)
	r.out.reverse(start)
	if cs.precision >= 0 {
		cs.zeroPad = false
	}
	r.out.justify(start, prefix, cs)
	return nil
}
