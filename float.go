package printf

import "math"

// renderFloat dispatches the six floating verbs after the shared
// non-finite check.
func (r *renderState) renderFloat(cs *convSpec) error {
	v, err := r.args.Float()
	if err != nil {
		return err
	}

	upper := cs.verb == verbFixedUpper || cs.verb == verbSciUpper || cs.verb == verbShortUpper
	if r.renderNonFinite(cs, v, upper) {
		return nil
	}

	prec := cs.precision
	if prec < 0 {
		prec = 6
	}
	switch cs.verb {
	case verbFixedLower, verbFixedUpper:
		r.renderFixed(cs, v, prec, false)
	case verbSciLower, verbSciUpper:
		r.renderScientific(cs, v, prec, upper, false)
	default:
		r.renderShortest(cs, v, upper)
	}
	return nil
}

// renderNonFinite writes nan or inf, case-matched to the verb, and
// reports whether it consumed the value. NaN takes its sign from the
// payload's sign bit; infinity from ordinary comparison. Neither is
// ever zero-padded.
func (r *renderState) renderNonFinite(cs *convSpec, v float64, upper bool) bool {
	var text string
	switch {
	case math.IsNaN(v) && upper:
		text = "NAN"
	case math.IsNaN(v):
		text = "nan"
	case math.IsInf(v, 0) && upper:
		text = "INF"
	case math.IsInf(v, 0):
		text = "inf"
	default:
		return false
	}
	start := r.out.pos
	r.writeSign(cs, math.Signbit(v))
	for i := 0; i < len(text); i++ {
		r.out.writeByte(text[i])
	}
	pad := *cs
	pad.zeroPad = false
	r.out.justify(start, 0, &pad)
	return true
}

// renderFixed writes a finite value in fixed-point form. The fraction
// is scaled by 10^prec and rounded half away from zero, carrying into
// the integer part on overflow. Digits go out least significant first
// (fraction, point, then integer part) and the span is reversed once.
// In shortest mode trailing fractional zeros, and a then-empty point,
// are dropped unless the alternate form pins them.
func (r *renderState) renderFixed(cs *convSpec, v float64, prec int, shortest bool) {
	neg := math.Signbit(v)
	prefix := r.writeSign(cs, neg)
	mag := math.Abs(v)

	ip, fp := math.Modf(mag)
	scale := math.Pow(10, float64(prec))
	frac := math.Floor(fp*scale + 0.5)
	if frac >= scale {
		frac -= scale
		ip++
	}

	start := r.out.pos
	if prec > 0 {
		skip := shortest && !cs.altForm
		for i := 0; i < prec; i++ {
			d := int(math.Mod(frac, 10))
			frac = math.Floor(frac / 10)
			if skip && d == 0 {
				continue
			}
			skip = false
			r.out.writeByte(lowerDigits[d])
		}
		if !skip {
			r.out.writeByte('.')
		}
	} else if cs.altForm {
		r.out.writeByte('.')
	}

	// Integer part exactly while it fits 64 bits, by float division
	// beyond that.
	if ip < (1 << 63) {
		u := uint64(ip)
		for {
			r.out.writeByte(lowerDigits[u%10])
			u /= 10
			if u == 0 {
				break
			}
		}
	} else {
		for ip >= 1 {
			r.out.writeByte(lowerDigits[int(math.Mod(ip, 10))])
			ip = math.Floor(ip / 10)
		}
	}

	r.out.reverse(start)
	r.out.justify(start, prefix, cs)
}

// renderScientific writes mantissa, exponent marker, and a signed
// two-digit exponent. The mantissa reuses the fixed renderer under a
// width-free copy of the spec; the exponent reuses the reversed digit
// writer under a synthetic spec that forces the sign and two digits.
func (r *renderState) renderScientific(cs *convSpec, v float64, prec int, upper, shortest bool) {
	neg := math.Signbit(v)
	prefix := r.writeSign(cs, neg)
	mag := math.Abs(v)

	exp := 0
	mant := 0.0
	if mag > 0 {
		exp = int(math.Floor(math.Log10(mag)))
		mant = mag / math.Pow(10, float64(exp))
		// Rounding at the requested precision can push the mantissa to
		// ten; renormalize before any digit is written.
		scale := math.Pow(10, float64(prec))
		if math.Floor(mant*scale+0.5) >= 10*scale {
			mant /= 10
			exp++
		}
	}

	start := r.out.pos
	mcs := *cs
	mcs.width = -1
	mcs.forceSign = false
	mcs.spacePrefix = false
	r.renderFixed(&mcs, mant, prec, shortest)

	if upper {
		r.out.writeByte('E')
	} else {
		r.out.writeByte('e')
	}

	ecs := convSpec{forceSign: true, width: -1, precision: 2, verb: verbDecimal}
	eneg := exp < 0
	emag := uint64(exp)
	if eneg {
		emag = -emag
	}
	r.writeSign(&ecs, eneg)
	estart := r.out.pos
	r.writeDigits(emag, 10, lowerDigits, &ecs)
	r.out.reverse(estart)

	r.out.justify(start, prefix, cs)
}

// renderShortest implements %g: fixed form while the exponent stays in
// [-4, precision), scientific beyond, keeping the significant-digit
// budget constant either way. Trailing-zero suppression is delegated to
// the fixed renderer's shortest mode.
func (r *renderState) renderShortest(cs *convSpec, v float64, upper bool) {
	prec := cs.precision
	if prec < 0 {
		prec = 6
	}
	if prec == 0 {
		prec = 1
	}

	exp := 0
	if mag := math.Abs(v); mag > 0 {
		exp = int(math.Floor(math.Log10(mag)))
		// Round at the significant-digit budget first so borderline
		// values pick their form from the rounded exponent.
		scale := math.Pow(10, float64(prec-1))
		if m := mag / math.Pow(10, float64(exp)); math.Floor(m*scale+0.5) >= 10*scale {
			exp++
		}
	}

	if prec > exp && exp >= -4 {
		r.renderFixed(cs, v, prec-exp-1, true)
	} else {
		r.renderScientific(cs, v, prec-1, upper, true)
	}
}
