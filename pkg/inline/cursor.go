package inline

// Cursor is a view over a block's raw text plus a mutable start offset.
// The text is never modified; recognition rules either advance Start past
// a claimed prefix or leave the cursor untouched.
//
// Invariant: 0 <= Start <= len(Text).
type Cursor struct {
	// Text is the block's raw inline content.
	Text []byte

	// Start is the offset of the first unconsumed byte.
	Start int
}

// Done reports whether the cursor has consumed all of the text.
func (c *Cursor) Done() bool {
	return c.Start >= len(c.Text)
}

// Peek returns the byte at the cursor, or 0 at end of text.
func (c *Cursor) Peek() byte {
	if c.Done() {
		return 0
	}
	return c.Text[c.Start]
}

// PrecedingByte returns the byte immediately before the cursor. The
// second return is false at the start of the text.
func (c *Cursor) PrecedingByte() (byte, bool) {
	if c.Start <= 0 || c.Start > len(c.Text) {
		return 0, false
	}
	return c.Text[c.Start-1], true
}

// Advance moves the cursor forward by n bytes, clamped to the end of the
// text.
func (c *Cursor) Advance(n int) {
	c.Start += n
	if c.Start > len(c.Text) {
		c.Start = len(c.Text)
	}
}
