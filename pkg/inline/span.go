package inline

import "sort"

// Span locates a piece of inline content in the block source: a byte
// range plus the 1-based line/column of its start.
type Span struct {
	// StartOffset is the byte index where the span begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the span ends (exclusive).
	EndOffset int

	// Line is the 1-based source line of StartOffset.
	Line int

	// Column is the 1-based byte column of StartOffset within its line.
	Column int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.EndOffset - s.StartOffset
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.StartOffset == s.EndOffset
}

// LineIndex maps byte offsets in a block to 1-based line/column pairs.
// It handles both LF and CRLF line endings.
type LineIndex struct {
	starts []int
	length int
}

// NewLineIndex builds a line index for the given content.
func NewLineIndex(content []byte) *LineIndex {
	starts := []int{0}
	for idx, char := range content {
		if char == '\n' {
			starts = append(starts, idx+1)
		}
	}
	return &LineIndex{starts: starts, length: len(content)}
}

// LineCount returns the number of lines in the content.
func (ix *LineIndex) LineCount() int {
	return len(ix.starts)
}

// PositionAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes. Returns (0, 0) if the offset is out of
// range.
func (ix *LineIndex) PositionAt(offset int) (line, column int) {
	if offset < 0 || offset > ix.length {
		return 0, 0
	}

	// Find the last line start <= offset.
	idx := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	}) - 1

	return idx + 1, offset - ix.starts[idx] + 1
}
