// Package inline provides the token-chain model for in-progress inline
// Markdown parsing: a tree of tagged-variant nodes with parent/sibling
// back-references, source spans, and a per-block processor that drives
// registered recognition rules over a cursor.
package inline

// NodeKind classifies the type of an inline token node.
type NodeKind uint8

// Node kinds for the inline token chain. The set is closed: the context
// validator switches exhaustively over it, so any new kind must be
// classified there as well.
const (
	// KindLiteral is a run of plain text.
	KindLiteral NodeKind = iota

	// KindHTMLTag is a raw HTML tag recognized in inline content.
	KindHTMLTag

	// KindLinkBracket is a '[' or ']' delimiter awaiting resolution.
	KindLinkBracket

	// KindEmphasisDelimiter is a run of '*', '_' or '~' awaiting resolution.
	KindEmphasisDelimiter

	// KindLink is a resolved link, either explicit or synthesized.
	KindLink

	// KindOther is any inline construct not relevant to autolink
	// recognition (code spans, breaks, entities, ...).
	KindOther

	// KindBlock is the root container for one block's inline chain.
	KindBlock
)

// Node is a single node in the in-progress inline token chain for one
// block. Nodes form a tree: delimiters that open a span become containers
// while the span is unresolved, so the chain is walked through Prev and
// Parent back-references.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers. The host owns the tree; recognition
	// rules only read it and append new nodes.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Span locates the node's visible text in the block source.
	Span Span

	// Literal holds the text content for KindLiteral.
	Literal []byte

	// HTMLTag holds attributes for KindHTMLTag.
	HTMLTag *HTMLTagAttrs

	// Bracket holds attributes for KindLinkBracket.
	Bracket *BracketAttrs

	// Delimiter holds attributes for KindEmphasisDelimiter.
	Delimiter *DelimiterAttrs

	// Link holds attributes for KindLink.
	Link *LinkAttrs
}

// HTMLTagAttrs holds attributes for raw HTML tag nodes.
type HTMLTagAttrs struct {
	// Name is the tag name as written, without brackets or slash.
	Name string

	// Closing is true for </name> tags.
	Closing bool

	// Raw is the full tag source, brackets included.
	Raw []byte
}

// BracketAttrs holds attributes for link bracket delimiter nodes.
type BracketAttrs struct {
	// Open is true for '[', false for ']'.
	Open bool

	// Active reports whether the bracket still participates in link
	// resolution. Deactivated brackets are ignored by the balance scan.
	Active bool
}

// DelimiterAttrs holds attributes for emphasis delimiter nodes.
type DelimiterAttrs struct {
	// Char is the delimiter character ('*', '_', '~').
	Char byte

	// Count is the run length of the delimiter.
	Count int
}

// LinkAttrs holds attributes for link nodes.
type LinkAttrs struct {
	// URL is the link destination, scheme included.
	URL string

	// AutoLink is true for links synthesized from bare text rather
	// than explicit markup.
	AutoLink bool
}

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindHTMLTag:
		return "html-tag"
	case KindLinkBracket:
		return "link-bracket"
	case KindEmphasisDelimiter:
		return "emphasis-delimiter"
	case KindLink:
		return "link"
	case KindOther:
		return "other"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// IsAnchorTag reports whether the node is a raw HTML <a> or </a> tag.
func (n *Node) IsAnchorTag() bool {
	return n.Kind == KindHTMLTag && n.HTMLTag != nil && equalFoldASCII(n.HTMLTag.Name, "a")
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// equalFoldASCII compares two strings ASCII-case-insensitively without
// allocating. Tag names are ASCII by construction.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
