package inline_test

import (
	"testing"

	"github.com/yaklabco/mdlinkify/pkg/inline"
)

// markerRule is a minimal recognition rule for driving the processor in
// tests: it claims exactly one byte at its trigger and replaces it with
// a KindOther node, or declines without side effects.
type markerRule struct {
	trigger byte
	match   bool
	calls   int
}

func (r *markerRule) Triggers() []byte { return []byte{r.trigger} }

func (r *markerRule) TryMatch(p *inline.Processor) bool {
	r.calls++
	if !r.match {
		return false
	}
	c := p.Cursor()
	node := &inline.Node{Kind: inline.KindOther, Span: p.SpanAt(c.Start, c.Start+1)}
	c.Advance(1)
	p.Push(node)
	return true
}

func childKinds(n *inline.Node) []inline.NodeKind {
	var kinds []inline.NodeKind
	for c := n.FirstChild; c != nil; c = c.Next {
		kinds = append(kinds, c.Kind)
	}
	return kinds
}

func TestProcess_PlainTextBecomesOneLiteral(t *testing.T) {
	t.Parallel()

	root := inline.NewPipeline().Process([]byte("just some words"))

	if root.Kind != inline.KindBlock {
		t.Fatalf("root kind = %s, want block", root.Kind)
	}
	if root.ChildCount() != 1 {
		t.Fatalf("children = %d, want 1", root.ChildCount())
	}

	child := root.FirstChild
	if child.Kind != inline.KindLiteral {
		t.Fatalf("child kind = %s, want literal", child.Kind)
	}
	if string(child.Literal) != "just some words" {
		t.Errorf("literal = %q", child.Literal)
	}
	if child.Span.StartOffset != 0 || child.Span.EndOffset != 15 {
		t.Errorf("span = [%d, %d)", child.Span.StartOffset, child.Span.EndOffset)
	}
}

func TestProcess_HTMLTags(t *testing.T) {
	t.Parallel()

	root := inline.NewPipeline().Process([]byte(`a <b class="x">c</b>`))

	want := []inline.NodeKind{
		inline.KindLiteral,
		inline.KindHTMLTag,
		inline.KindLiteral,
		inline.KindHTMLTag,
	}
	got := childKinds(root)
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("children = %v, want %v", got, want)
		}
	}

	open := root.FirstChild.Next
	if open.HTMLTag.Name != "b" || open.HTMLTag.Closing {
		t.Errorf("open tag = %+v", open.HTMLTag)
	}
	if string(open.HTMLTag.Raw) != `<b class="x">` {
		t.Errorf("raw = %q", open.HTMLTag.Raw)
	}

	closing := root.LastChild
	if closing.HTMLTag.Name != "b" || !closing.HTMLTag.Closing {
		t.Errorf("closing tag = %+v", closing.HTMLTag)
	}
}

func TestProcess_SelfClosingTagIsNotClosing(t *testing.T) {
	t.Parallel()

	root := inline.NewPipeline().Process([]byte("<br/>"))

	tag := root.FirstChild
	if tag == nil || tag.Kind != inline.KindHTMLTag {
		t.Fatalf("child = %v, want an html tag", tag)
	}
	if tag.HTMLTag.Name != "br" || tag.HTMLTag.Closing {
		t.Errorf("tag = %+v, want open br", tag.HTMLTag)
	}
}

func TestProcess_BareLessThanStaysLiteral(t *testing.T) {
	t.Parallel()

	root := inline.NewPipeline().Process([]byte("1 < 2"))

	if root.ChildCount() != 1 {
		t.Fatalf("children = %d, want one literal", root.ChildCount())
	}
	if string(root.FirstChild.Literal) != "1 < 2" {
		t.Errorf("literal = %q", root.FirstChild.Literal)
	}
}

func TestProcess_BracketsNestContent(t *testing.T) {
	t.Parallel()

	root := inline.NewPipeline().Process([]byte("[alt]"))

	got := childKinds(root)
	if len(got) != 2 || got[0] != inline.KindLinkBracket || got[1] != inline.KindLinkBracket {
		t.Fatalf("children = %v, want open and close brackets", got)
	}

	open := root.FirstChild
	if !open.Bracket.Open || !open.Bracket.Active {
		t.Errorf("opener = %+v", open.Bracket)
	}
	if open.ChildCount() != 1 || string(open.FirstChild.Literal) != "alt" {
		t.Errorf("opener should contain the bracketed text, got %d children", open.ChildCount())
	}

	closer := root.LastChild
	if closer.Bracket.Open {
		t.Error("second bracket should be a closer")
	}
	if closer.HasChildren() {
		t.Error("closer should be a leaf")
	}
}

func TestProcess_UnmatchedCloseBracket(t *testing.T) {
	t.Parallel()

	root := inline.NewPipeline().Process([]byte("]tail"))

	got := childKinds(root)
	if len(got) != 2 || got[0] != inline.KindLinkBracket || got[1] != inline.KindLiteral {
		t.Fatalf("children = %v, want [link-bracket literal]", got)
	}
	if root.FirstChild.Bracket.Open {
		t.Error("bracket should be a closer")
	}
}

func TestProcess_DelimiterRuns(t *testing.T) {
	t.Parallel()

	root := inline.NewPipeline().Process([]byte("**bold**"))

	got := childKinds(root)
	want := []inline.NodeKind{
		inline.KindEmphasisDelimiter,
		inline.KindLiteral,
		inline.KindEmphasisDelimiter,
	}
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}

	first := root.FirstChild
	if first.Delimiter.Char != '*' || first.Delimiter.Count != 2 {
		t.Errorf("delimiter = %+v, want '*' x2", first.Delimiter)
	}
	if string(first.Next.Literal) != "bold" {
		t.Errorf("inner literal = %q", first.Next.Literal)
	}
}

func TestProcess_RuleClaimsTrigger(t *testing.T) {
	t.Parallel()

	rule := &markerRule{trigger: 'x', match: true}
	root := inline.NewPipeline(rule).Process([]byte("ab x cd"))

	got := childKinds(root)
	want := []inline.NodeKind{inline.KindLiteral, inline.KindOther, inline.KindLiteral}
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	if string(root.FirstChild.Literal) != "ab " {
		t.Errorf("leading literal = %q", root.FirstChild.Literal)
	}
	if string(root.LastChild.Literal) != " cd" {
		t.Errorf("trailing literal = %q", root.LastChild.Literal)
	}
	if rule.calls != 1 {
		t.Errorf("rule invoked %d times, want once at its trigger", rule.calls)
	}
}

func TestProcess_DecliningRuleFallsThroughToLiteral(t *testing.T) {
	t.Parallel()

	rule := &markerRule{trigger: 'x', match: false}
	root := inline.NewPipeline(rule).Process([]byte("axa"))

	if rule.calls != 1 {
		t.Errorf("rule invoked %d times, want 1", rule.calls)
	}
	if root.ChildCount() != 1 || string(root.FirstChild.Literal) != "axa" {
		t.Errorf("declined trigger should remain literal text")
	}
}

func TestProcess_RegistrationOrderIsPriority(t *testing.T) {
	t.Parallel()

	first := &markerRule{trigger: 'x', match: true}
	second := &markerRule{trigger: 'x', match: true}
	inline.NewPipeline(first, second).Process([]byte("x"))

	if first.calls != 1 {
		t.Errorf("first rule invoked %d times, want 1", first.calls)
	}
	if second.calls != 0 {
		t.Errorf("second rule invoked %d times, want 0: first rule claimed the byte", second.calls)
	}
}

func TestProcess_DeclinedTriggerTriesNextRule(t *testing.T) {
	t.Parallel()

	first := &markerRule{trigger: 'x', match: false}
	second := &markerRule{trigger: 'x', match: true}
	root := inline.NewPipeline(first, second).Process([]byte("x"))

	if first.calls != 1 || second.calls != 1 {
		t.Errorf("calls = %d/%d, want both rules attempted", first.calls, second.calls)
	}
	if root.FirstChild == nil || root.FirstChild.Kind != inline.KindOther {
		t.Error("second rule should have claimed the byte")
	}
}

func TestProcessor_SpanAt(t *testing.T) {
	t.Parallel()

	p := inline.NewProcessor([]byte("ab\ncd"))

	span := p.SpanAt(3, 5)
	if span.StartOffset != 3 || span.EndOffset != 5 {
		t.Errorf("offsets = [%d, %d)", span.StartOffset, span.EndOffset)
	}
	if span.Line != 2 || span.Column != 1 {
		t.Errorf("position = %d:%d, want 2:1", span.Line, span.Column)
	}
}
