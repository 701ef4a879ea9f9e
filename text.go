package printf

// renderString handles %s: copy at most precision bytes, then justify.
// Strings never zero-pad.
func (r *renderState) renderString(cs *convSpec) error {
	s, err := r.args.Str()
	if err != nil {
		return err
	}
	max := len(s)
	if cs.precision >= 0 && cs.precision < max {
		max = cs.precision
	}
	start := r.out.pos
	for i := 0; i < max; i++ {
		if !r.out.writeByte(s[i]) {
			break
		}
	}
	r.out.justify(start, 0, cs)
	return nil
}

// renderChar handles %c: a single byte, still subject to width and
// justification. Precision has no meaning here.
func (r *renderState) renderChar(cs *convSpec) error {
	c, err := r.args.Char()
	if err != nil {
		return err
	}
	start := r.out.pos
	r.out.writeByte(c)
	r.out.justify(start, 0, cs)
	return nil
}
