// Package printf renders C-style format strings into fixed-capacity
// byte buffers, from scratch.
//
// The package reimplements the printf rendering core: directive
// parsing, typed argument consumption, integer and floating-point
// digit generation, and width/precision/flag justification. It never
// delegates to fmt verbs, strconv, or any other formatting machinery.
// The central entry points are [Render] and [Format], which write into
// a caller-supplied buffer and never allocate.
//
// # Directives
//
// The directive grammar is %[flags][width][.precision][length]specifier.
//
//   - flags: '-' '+' ' ' '#' '0'
//   - width: a digit run, or '*' to take the next integer argument
//   - precision: '.' then a digit run or '*'; a bare '.' means zero
//   - length: h, hh, l, and the compatibility combination hl
//   - specifier: d i u o x X f F e E g G c s; %% is a literal percent
//
// The %a, %A, %p and %n specifiers are out of scope and fail fast with
// [ErrUnsupportedSpecifier] rather than misrendering.
//
// # Arguments
//
// Values travel through an [Args] cursor. Integer arguments are fetched
// at full width regardless of length modifier and narrowed inside the
// renderer, mirroring C variadic promotion; strings, chars, and floats
// have fixed fetch widths.
//
//	buf := make([]byte, 64)
//	n, err := printf.Format(buf, "%+08.2f", 3.5)   // "+0003.50"
//	n, err = printf.Render(buf, "%*d", printf.NewArgs(5, 42))
//
// # Buffer Semantics
//
// Output is always NUL-terminated within the buffer; one byte of
// capacity is reserved for the terminator, which keeps the last slot
// when the output is truncated. A full buffer ends the render early
// with the bytes that fit and [ErrBufferExhausted]; the partial output
// remains valid. Right justification that runs out of room is
// abandoned, leaving the unpadded value intact.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedSpecifier] — unknown or out-of-scope directive
//   - [ErrMalformedDirective] — format ends inside a %-directive
//   - [ErrBufferExhausted] — output truncated to the buffer capacity
//   - [ErrArgumentCount] — more directives than values
//   - [ErrArgumentType] — value does not match its specifier
package printf
