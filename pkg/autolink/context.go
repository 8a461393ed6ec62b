package autolink

import "github.com/yaklabco/mdlinkify/pkg/inline"

// validContext decides whether an autolink is syntactically legal at the
// position whose token-chain tail is node. Two scans over the
// partially-built chain must both pass:
//
//   - the anchor scan rejects positions nested inside a raw <a> tag that
//     has not been closed yet;
//   - the bracket scan rejects positions whose enclosing scope carries a
//     net surplus of active open link brackets.
//
// The scratch set collects every distinct emphasis delimiter character
// seen on the parent chain. It mirrors the bookkeeping the host's own
// delimiter pass performs and does not gate the result.
func validContext(node *inline.Node, scratch *DelimiterSet) bool {
	anchorOK := noOpenAnchorInScope(node)
	balance := bracketBalance(node, scratch)
	return anchorOK && balance <= 0
}

// noOpenAnchorInScope walks the chain outward, preferring left siblings
// before ascending to the parent, and stops at the first decisive anchor
// tag: a closing </a> means any earlier <a> is already terminated, an
// opening <a> means the position is inside an unterminated anchor.
func noOpenAnchorInScope(node *inline.Node) bool {
	for n := node; n != nil; {
		if n.IsAnchorTag() {
			return n.HTMLTag.Closing
		}
		if n.Prev != nil {
			n = n.Prev
		} else {
			n = n.Parent
		}
	}
	return true
}

// bracketBalance walks strictly parent links to the root and returns the
// net count of active open link brackets in scope. The walk never stops
// early: every ancestor contributes, and every distinct emphasis
// delimiter character on the way is recorded into scratch. A negative
// result (more closes than opens) is reported as-is; the caller treats
// it as "not inside an unmatched open bracket".
func bracketBalance(node *inline.Node, scratch *DelimiterSet) int {
	balance := 0
	for n := node; n != nil; n = n.Parent {
		switch n.Kind {
		case inline.KindLinkBracket:
			if n.Bracket.Active {
				if n.Bracket.Open {
					balance++
				} else {
					balance--
				}
			}
		case inline.KindEmphasisDelimiter:
			scratch.Add(n.Delimiter.Char)
		case inline.KindLiteral, inline.KindHTMLTag, inline.KindLink,
			inline.KindOther, inline.KindBlock:
			// Not part of bracket scope.
		}
	}
	return balance
}
