// Package goldmarkext installs the email autolink matcher as a goldmark
// inline parser, so goldmark pipelines recognize the same addresses as
// the native rule.
package goldmarkext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdlinkify/pkg/autolink"
)

// inlineParserPriority places the parser ahead of goldmark's built-in
// link parsers so bare addresses are claimed before bracket handling.
const inlineParserPriority = 150

type emailParser struct {
	rule *autolink.Rule
}

// NewEmailParser creates a goldmark inline parser recognizing email
// autolinks with the given rule options.
func NewEmailParser(opts ...autolink.Option) parser.InlineParser {
	return &emailParser{rule: autolink.New(opts...)}
}

// Trigger returns the bytes this parser is attempted at.
func (p *emailParser) Trigger() []byte {
	return p.rule.Triggers()
}

// Parse recognizes an email address at the reader position and produces
// an AutoLink node, or returns nil to let other parsers run.
func (p *emailParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	preceding := block.PrecendingCharacter()
	if preceding >= 256 {
		return nil
	}
	if preceding >= 0 && !p.rule.AllowsPrevious(byte(preceding)) {
		return nil
	}

	line, seg := block.PeekLine()
	m, ok := autolink.Match(line, 0)
	if !ok {
		return nil
	}

	trailing := 0
	if m.Bracketed {
		trailing = 1
	}
	addrStart := seg.Start + m.Consumed - trailing - len(m.Address)

	value := ast.NewTextSegment(text.NewSegment(addrStart, addrStart+len(m.Address)))
	block.Advance(m.Consumed)
	return ast.NewAutoLink(ast.AutoLinkEmail, value)
}

type emailExtension struct {
	opts []autolink.Option
}

// Email is the goldmark extension enabling email autolinks with default
// options.
var Email goldmark.Extender = &emailExtension{}

// NewEmailExtension creates a goldmark extension with rule options.
func NewEmailExtension(opts ...autolink.Option) goldmark.Extender {
	return &emailExtension{opts: opts}
}

// Extend registers the inline parser on the goldmark instance.
func (e *emailExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewEmailParser(e.opts...), inlineParserPriority),
	))
}
