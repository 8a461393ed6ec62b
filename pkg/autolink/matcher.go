// Package autolink recognizes bare and angle-bracketed email addresses
// in inline Markdown text and turns them into link nodes. The rule runs
// before delimiter resolution, so it validates its position against the
// partially-built token chain instead of a finished tree.
package autolink

import (
	"bytes"
	"regexp"
)

// MatchResult describes a successful email match.
type MatchResult struct {
	// Address is the bare email address, without surrounding angle
	// brackets or a mailto: prefix.
	Address string

	// Consumed is the total number of bytes claimed, decoration
	// included.
	Consumed int

	// Bracketed is true when the match was angle-bracket-delimited.
	Bracketed bool
}

// addressPattern matches the address itself, anchored at the current
// position: local part, '@', dot-separated DNS labels with the final
// label alphabetic-only. The label tail relies on regexp preference
// semantics so that a trailing bare '.' or a numeric final label backs
// off to the last valid alphabetic label instead of failing outright.
var addressPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+@(?:[A-Za-z0-9-]+\.)*[A-Za-z]+`)

var mailtoPrefix = []byte("mailto:")

// Match attempts to recognize an email-shaped token at start. It never
// scans forward past start looking for a later match: the first byte
// must begin the token. The optional leading '<' requires a matching '>'
// immediately after the address; without it the whole match is rejected.
func Match(text []byte, start int) (MatchResult, bool) {
	if start < 0 || start >= len(text) {
		return MatchResult{}, false
	}

	rest := text[start:]
	pos := 0
	bracketed := false

	if rest[0] == '<' {
		bracketed = true
		pos++
	}
	if len(rest)-pos >= len(mailtoPrefix) &&
		bytes.EqualFold(rest[pos:pos+len(mailtoPrefix)], mailtoPrefix) {
		pos += len(mailtoPrefix)
	}

	loc := addressPattern.FindIndex(rest[pos:])
	if loc == nil {
		return MatchResult{}, false
	}

	address := string(rest[pos : pos+loc[1]])
	end := pos + loc[1]

	if bracketed {
		if end >= len(rest) || rest[end] != '>' {
			return MatchResult{}, false
		}
		end++
	}

	return MatchResult{Address: address, Consumed: end, Bracketed: bracketed}, true
}
