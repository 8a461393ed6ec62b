// Package render turns an inline token tree back into Markdown source
// text. It is the narrow reverse boundary of the pipeline: nodes carry
// enough of their own source to be re-emitted without the original text.
package render

import (
	"strings"

	"github.com/yaklabco/mdlinkify/pkg/inline"
)

// Options control reverse rendering.
type Options struct {
	// ExpandAutoLinks controls how synthesized links are emitted.
	// When false, an autolink renders as its raw URL text in place of
	// any markup. When true, autolinks render like explicit links.
	ExpandAutoLinks bool
}

// Inline renders the tree rooted at node back to source text.
func Inline(node *inline.Node, opts Options) string {
	var b strings.Builder
	writeNode(&b, node, opts)
	return b.String()
}

func writeNode(b *strings.Builder, n *inline.Node, opts Options) {
	if n == nil {
		return
	}

	switch n.Kind {
	case inline.KindLiteral:
		b.Write(n.Literal)
	case inline.KindHTMLTag:
		b.Write(n.HTMLTag.Raw)
	case inline.KindLinkBracket:
		if n.Bracket.Open {
			b.WriteByte('[')
			writeChildren(b, n, opts)
		} else {
			b.WriteByte(']')
		}
	case inline.KindEmphasisDelimiter:
		b.WriteString(strings.Repeat(string(n.Delimiter.Char), n.Delimiter.Count))
	case inline.KindLink:
		writeLink(b, n, opts)
	case inline.KindOther, inline.KindBlock:
		writeChildren(b, n, opts)
	}
}

func writeLink(b *strings.Builder, n *inline.Node, opts Options) {
	if n.Link.AutoLink && !opts.ExpandAutoLinks {
		b.WriteString(n.Link.URL)
		return
	}

	// Generic link form.
	b.WriteByte('[')
	writeChildren(b, n, opts)
	b.WriteString("](")
	b.WriteString(n.Link.URL)
	b.WriteByte(')')
}

func writeChildren(b *strings.Builder, n *inline.Node, opts Options) {
	for child := n.FirstChild; child != nil; child = child.Next {
		writeNode(b, child, opts)
	}
}
