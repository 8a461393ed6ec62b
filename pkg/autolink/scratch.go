package autolink

import "sync"

// DelimiterSet is a small deduplicated set of emphasis delimiter
// characters, reused across rule invocations through a pool.
type DelimiterSet struct {
	chars []byte
}

// Add inserts a character if not already present.
func (s *DelimiterSet) Add(c byte) {
	if !s.Has(c) {
		s.chars = append(s.chars, c)
	}
}

// Has reports whether the character is in the set.
func (s *DelimiterSet) Has(c byte) bool {
	for _, have := range s.chars {
		if have == c {
			return true
		}
	}
	return false
}

// Len returns the number of distinct characters in the set.
func (s *DelimiterSet) Len() int {
	return len(s.chars)
}

// Reset empties the set, keeping its backing storage.
func (s *DelimiterSet) Reset() {
	s.chars = s.chars[:0]
}

// Only three delimiter characters exist, so the backing slice never grows
// past that in practice.
var delimiterSetPool = sync.Pool{
	New: func() any {
		return &DelimiterSet{chars: make([]byte, 0, 4)}
	},
}

// acquireDelimiterSet returns an empty set from the pool.
func acquireDelimiterSet() *DelimiterSet {
	return delimiterSetPool.Get().(*DelimiterSet) //nolint:forcetypeassert // pool only holds *DelimiterSet
}

// releaseDelimiterSet clears the set and returns it to the pool. Callers
// must release on every exit path and must not retain the set afterward.
func releaseDelimiterSet(s *DelimiterSet) {
	s.Reset()
	delimiterSetPool.Put(s)
}
