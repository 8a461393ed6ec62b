package autolink

import "github.com/yaklabco/mdlinkify/pkg/inline"

// DefaultValidPreviousCharacters are the delimiter characters allowed
// immediately before an autolink, besides whitespace and start of
// content. They are the characters that legitimately begin a run of
// emphasized or parenthesized text.
const DefaultValidPreviousCharacters = "*_~("

// Rule recognizes email autolinks. It implements inline.Rule and is
// stateless across invocations: every attempt either claims a prefix of
// the block text or leaves processor and cursor untouched.
type Rule struct {
	validPrev [256]bool
}

// Option configures a Rule at construction time.
type Option func(*Rule)

// WithValidPreviousCharacters replaces the default allow-list of
// delimiter characters valid immediately before an autolink. Whitespace
// and start of content are always valid regardless of this set.
func WithValidPreviousCharacters(chars string) Option {
	return func(r *Rule) {
		r.validPrev = [256]bool{}
		for i := 0; i < len(chars); i++ {
			r.validPrev[chars[i]] = true
		}
	}
}

// New creates an email autolink rule.
func New(opts ...Option) *Rule {
	r := &Rule{}
	WithValidPreviousCharacters(DefaultValidPreviousCharacters)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Triggers returns the bytes that can begin an email autolink: letters,
// digits, and '<' for the bracketed form.
func (r *Rule) Triggers() []byte {
	var bytes []byte
	for b := byte('a'); b <= 'z'; b++ {
		bytes = append(bytes, b)
	}
	for b := byte('A'); b <= 'Z'; b++ {
		bytes = append(bytes, b)
	}
	for b := byte('0'); b <= '9'; b++ {
		bytes = append(bytes, b)
	}
	return append(bytes, '<')
}

// TryMatch attempts to recognize an email autolink at the processor's
// cursor. On success it appends one Link node with a single Literal
// child and advances the cursor past the consumed text, returning true.
// Every decline path returns false with cursor and tree unchanged.
func (r *Rule) TryMatch(p *inline.Processor) bool {
	cursor := p.Cursor()

	if prev, ok := cursor.PrecedingByte(); ok && !r.AllowsPrevious(prev) {
		return false
	}

	scratch := acquireDelimiterSet()
	defer releaseDelimiterSet(scratch)

	if !validContext(p.Inline(), scratch) {
		return false
	}

	m, ok := Match(cursor.Text, cursor.Start)
	if !ok {
		return false
	}

	// The span covers the visible address only, not the '<', mailto:
	// or '>' decoration around it.
	trailing := 0
	if m.Bracketed {
		trailing = 1
	}
	addrStart := cursor.Start + m.Consumed - trailing - len(m.Address)
	span := p.SpanAt(addrStart, addrStart+len(m.Address))

	link := inline.NewLink("mailto:"+m.Address, true, span)
	inline.AppendChild(link, inline.NewLiteral([]byte(m.Address), span))

	cursor.Advance(m.Consumed)
	p.Push(link)
	return true
}

// AllowsPrevious reports whether an autolink may start immediately after
// the given byte: whitespace or a member of the configured allow-list.
// Adapters embedding the rule in other pipelines share this policy.
func (r *Rule) AllowsPrevious(b byte) bool {
	return isWhitespace(b) || r.validPrev[b]
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
