package inline

// NewLiteral creates a literal text node covering the given span.
func NewLiteral(text []byte, span Span) *Node {
	return &Node{Kind: KindLiteral, Literal: text, Span: span}
}

// NewHTMLTag creates a raw HTML tag node.
func NewHTMLTag(name string, closing bool, raw []byte, span Span) *Node {
	return &Node{
		Kind:    KindHTMLTag,
		HTMLTag: &HTMLTagAttrs{Name: name, Closing: closing, Raw: raw},
		Span:    span,
	}
}

// NewLinkBracket creates a link bracket delimiter node. New brackets are
// active until a later resolution pass deactivates them.
func NewLinkBracket(open bool, span Span) *Node {
	return &Node{
		Kind:    KindLinkBracket,
		Bracket: &BracketAttrs{Open: open, Active: true},
		Span:    span,
	}
}

// NewEmphasisDelimiter creates an emphasis delimiter node for a run of
// count repetitions of char.
func NewEmphasisDelimiter(char byte, count int, span Span) *Node {
	return &Node{
		Kind:      KindEmphasisDelimiter,
		Delimiter: &DelimiterAttrs{Char: char, Count: count},
		Span:      span,
	}
}

// NewLink creates a link node.
func NewLink(url string, autoLink bool, span Span) *Node {
	return &Node{
		Kind: KindLink,
		Link: &LinkAttrs{URL: url, AutoLink: autoLink},
		Span: span,
	}
}

// AppendChild appends a child node to a parent, maintaining the
// parent/child/sibling relationships.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// RemoveChild removes a child from its parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// Walk performs a pre-order traversal of the tree starting at root.
// If fn returns a non-nil error the walk stops and returns it.
func Walk(root *Node, fn func(n *Node) error) error {
	if root == nil {
		return nil
	}

	if err := fn(root); err != nil {
		return err
	}

	for child := root.FirstChild; child != nil; child = child.Next {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}

	return nil
}

// FindByKind returns all nodes of the specified kind in document order.
func FindByKind(root *Node, kind NodeKind) []*Node {
	var result []*Node

	//nolint:errcheck // the visitor never returns an error
	Walk(root, func(n *Node) error {
		if n.Kind == kind {
			result = append(result, n)
		}
		return nil
	})

	return result
}
