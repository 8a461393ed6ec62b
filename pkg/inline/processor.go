package inline

import "regexp"

// Rule is an inline recognition rule. TryMatch either claims a prefix of
// the remaining text (mutating the processor and returning true) or
// declines with no side effects.
type Rule interface {
	// Triggers returns the bytes at which the rule should be attempted.
	Triggers() []byte

	// TryMatch attempts to recognize a construct at the processor's
	// cursor. On success the rule must append exactly one node and
	// advance the cursor past the consumed text.
	TryMatch(p *Processor) bool
}

// Pipeline holds registered inline rules keyed by trigger byte. Rules
// registered earlier are attempted first. A Pipeline is reusable across
// blocks and safe for concurrent Process calls once registration is done.
type Pipeline struct {
	rules [256][]Rule
}

// NewPipeline creates a pipeline with the given rules registered in
// order.
func NewPipeline(rules ...Rule) *Pipeline {
	pl := &Pipeline{}
	for _, r := range rules {
		pl.Register(r)
	}
	return pl
}

// Register adds a rule. Registration order determines priority: earlier
// rules run first at a shared trigger byte.
func (pl *Pipeline) Register(r Rule) {
	for _, b := range r.Triggers() {
		pl.rules[b] = append(pl.rules[b], r)
	}
}

// Process scans one block of inline text and returns the root of the
// produced token tree.
func (pl *Pipeline) Process(text []byte) *Node {
	p := NewProcessor(text)
	p.pipeline = pl
	p.run()
	return p.root
}

// NewProcessor creates a standalone processor over one block. Pipelines
// create their own; standalone processors let hosts (and tests) drive
// individual rules directly.
func NewProcessor(text []byte) *Processor {
	p := &Processor{
		cursor: &Cursor{Text: text},
		lines:  NewLineIndex(text),
		root:   &Node{Kind: KindBlock},
	}
	p.parent = p.root
	return p
}

// Processor drives the inline scan of a single block. It owns the token
// tree; rules access the cursor and chain through its methods and hand
// back new nodes via Push.
type Processor struct {
	pipeline *Pipeline
	cursor   *Cursor
	lines    *LineIndex

	root   *Node
	parent *Node // container currently being filled
	inline *Node // most recently produced node, tail of the chain

	// Pending literal run, flushed into a single node when a
	// structural node is pushed or the block ends.
	pendingStart int
	pendingEnd   int
	hasPending   bool
}

// Root returns the root of the token tree being built.
func (p *Processor) Root() *Node {
	return p.root
}

// Cursor returns the processor's cursor over the block text.
func (p *Processor) Cursor() *Cursor {
	return p.cursor
}

// Inline returns the most recently produced inline node, the tail of the
// token chain recognition rules walk backward from. It is nil at the
// start of a block.
func (p *Processor) Inline() *Node {
	return p.inline
}

// PositionAt converts a block byte offset to a 1-based line/column pair.
func (p *Processor) PositionAt(offset int) (line, column int) {
	return p.lines.PositionAt(offset)
}

// SpanAt builds a span for the byte range [start, end).
func (p *Processor) SpanAt(start, end int) Span {
	line, column := p.lines.PositionAt(start)
	return Span{StartOffset: start, EndOffset: end, Line: line, Column: column}
}

// Push appends a node produced by a rule (or the fallback scan) at the
// current tree position and makes it the chain tail. Any pending literal
// text is flushed first so source order is preserved.
func (p *Processor) Push(n *Node) {
	p.flushPending()
	AppendChild(p.parent, n)
	p.inline = n
}

func (p *Processor) run() {
	for !p.cursor.Done() {
		if p.tryRules() {
			continue
		}
		p.scanFallback()
	}
	p.flushPending()
}

func (p *Processor) tryRules() bool {
	for _, r := range p.pipeline.rules[p.cursor.Peek()] {
		if r.TryMatch(p) {
			return true
		}
	}
	return false
}

// scanFallback consumes input the host understands natively: raw HTML
// tags, link brackets, emphasis delimiter runs, and literal text.
func (p *Processor) scanFallback() {
	c := p.cursor
	switch c.Peek() {
	case '<':
		if p.scanHTMLTag() {
			return
		}
		p.extendPending()
	case '[':
		span := p.SpanAt(c.Start, c.Start+1)
		bracket := NewLinkBracket(true, span)
		p.Push(bracket)
		// The open bracket contains everything up to its close.
		p.parent = bracket
		c.Advance(1)
	case ']':
		span := p.SpanAt(c.Start, c.Start+1)
		if opener := p.openBracketScope(); opener != nil {
			p.flushPending()
			p.parent = opener.Parent
		}
		p.Push(NewLinkBracket(false, span))
		c.Advance(1)
	case '*', '_', '~':
		p.scanDelimiterRun()
	default:
		p.extendPending()
	}
}

// htmlTagPattern recognizes open and close tags, loosely: the host only
// needs tag identity, not CommonMark's full raw-HTML grammar.
var htmlTagPattern = regexp.MustCompile(`^<(/?)([a-zA-Z][a-zA-Z0-9-]*)(?:\s+[^<>]*)?(/?)>`)

func (p *Processor) scanHTMLTag() bool {
	c := p.cursor
	rest := c.Text[c.Start:]
	m := htmlTagPattern.FindSubmatchIndex(rest)
	if m == nil {
		return false
	}

	raw := rest[:m[1]]
	name := string(rest[m[4]:m[5]])
	closing := m[3] > m[2] // non-empty leading slash

	span := p.SpanAt(c.Start, c.Start+len(raw))
	p.Push(NewHTMLTag(name, closing, raw, span))
	c.Advance(len(raw))
	return true
}

func (p *Processor) scanDelimiterRun() {
	c := p.cursor
	char := c.Peek()
	end := c.Start
	for end < len(c.Text) && c.Text[end] == char {
		end++
	}

	span := p.SpanAt(c.Start, end)
	p.Push(NewEmphasisDelimiter(char, end-c.Start, span))
	c.Advance(end - c.Start)
}

// openBracketScope returns the nearest enclosing active open bracket, or
// nil when the current position is not inside one.
func (p *Processor) openBracketScope() *Node {
	for n := p.parent; n != nil; n = n.Parent {
		if n.Kind == KindLinkBracket && n.Bracket.Open && n.Bracket.Active {
			return n
		}
	}
	return nil
}

func (p *Processor) extendPending() {
	if !p.hasPending {
		p.pendingStart = p.cursor.Start
		p.hasPending = true
	}
	p.cursor.Advance(1)
	p.pendingEnd = p.cursor.Start
}

func (p *Processor) flushPending() {
	if !p.hasPending {
		return
	}

	start, end := p.pendingStart, p.pendingEnd
	p.hasPending = false

	text := p.cursor.Text[start:end]
	node := NewLiteral(text, p.SpanAt(start, end))
	AppendChild(p.parent, node)
	p.inline = node
}
