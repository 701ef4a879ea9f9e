package printf

// sink is a bounds-checked cursor over the caller's output buffer. One
// byte of capacity is reserved for the NUL terminator, so payload
// writes may use at most len(buf)-1 bytes. Once a write misses, full is
// set and every later write is a no-op.
type sink struct {
	buf  []byte
	pos  int
	full bool
}

// writeByte appends one byte and reports whether it fit.
func (s *sink) writeByte(b byte) bool {
	if s.pos >= len(s.buf)-1 {
		s.full = true
		return false
	}
	s.buf[s.pos] = b
	s.pos++
	return true
}

// lastByte returns the most recently written byte, or zero when nothing
// has been written yet.
func (s *sink) lastByte() byte {
	if s.pos == 0 {
		return 0
	}
	return s.buf[s.pos-1]
}

// reverse flips buf[start:pos] in place. Digit renderers emit least
// significant first and flip the span once afterwards.
func (s *sink) reverse(start int) {
	for i, j := start, s.pos-1; i < j; i, j = i+1, j-1 {
		s.buf[i], s.buf[j] = s.buf[j], s.buf[i]
	}
}

// terminate writes the NUL terminator at the cursor and reports whether
// there was room. The reserved byte guarantees success whenever the
// buffer has any capacity at all.
func (s *sink) terminate() bool {
	if s.pos >= len(s.buf) {
		return false
	}
	s.buf[s.pos] = 0
	return true
}

// justify pads the span written since start out to cs.width. prefixLen
// counts sign or base-prefix bytes sitting immediately before start.
// Zero padding is inserted between the prefix and the span; space
// padding shifts the prefix together with the span so a sign never
// detaches from its digits.
//
// Right justification reserves the pad bytes first. If the buffer runs
// out during that reservation the shift is abandoned and the unpadded
// value stays where it was written.
func (s *sink) justify(start, prefixLen int, cs *convSpec) {
	if cs.width < 0 {
		return
	}
	span := s.pos - start
	pad := cs.width - span - prefixLen
	if pad <= 0 {
		return
	}
	if cs.leftJustify {
		for i := 0; i < pad; i++ {
			if !s.writeByte(' ') {
				return
			}
		}
		return
	}
	padChar := byte(' ')
	if cs.zeroPad && cs.verb != verbString {
		padChar = '0'
	}
	if padChar == ' ' {
		start -= prefixLen
		span += prefixLen
	}
	for i := 0; i < pad; i++ {
		if !s.writeByte(padChar) {
			return
		}
	}
	// copy is overlap-safe, so the rightward shift needs no manual
	// tail-first loop.
	copy(s.buf[start+pad:start+pad+span], s.buf[start:start+span])
	for i := 0; i < pad; i++ {
		s.buf[start+i] = padChar
	}
}
