// Package scan runs the autolink pipeline over file contents and
// collects the recognized addresses.
package scan

import (
	"github.com/yaklabco/mdlinkify/pkg/autolink"
	"github.com/yaklabco/mdlinkify/pkg/inline"
)

// Match is one recognized email autolink.
type Match struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Address string `json:"address"`
	URL     string `json:"url"`
}

// Result aggregates matches across scanned files.
type Result struct {
	FilesScanned int     `json:"files_scanned"`
	Matches      []Match `json:"matches"`
}

// NewPipeline builds an inline pipeline with the email autolink rule
// registered first, using the given previous-character allow-list.
func NewPipeline(previousChars string) *inline.Pipeline {
	rule := autolink.New(autolink.WithValidPreviousCharacters(previousChars))
	return inline.NewPipeline(rule)
}

// Content scans one file's content and returns its matches in source
// order.
func Content(pl *inline.Pipeline, path string, content []byte) []Match {
	root := pl.Process(content)

	var matches []Match
	for _, node := range inline.FindByKind(root, inline.KindLink) {
		if node.Link == nil || !node.Link.AutoLink {
			continue
		}
		matches = append(matches, Match{
			Path:    path,
			Line:    node.Span.Line,
			Column:  node.Span.Column,
			Address: addressOf(node),
			URL:     node.Link.URL,
		})
	}
	return matches
}

// Tree returns the processed inline tree for one file's content, for
// consumers that need more than the match list (e.g. rewriting).
func Tree(pl *inline.Pipeline, content []byte) *inline.Node {
	return pl.Process(content)
}

func addressOf(node *inline.Node) string {
	if node.FirstChild != nil && node.FirstChild.Kind == inline.KindLiteral {
		return string(node.FirstChild.Literal)
	}
	return ""
}
