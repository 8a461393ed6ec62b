package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdlinkify/pkg/scan"
)

// FormatMatch formats a single recognized autolink for terminal output.
func (s *Styles) FormatMatch(m scan.Match) string {
	location := fmt.Sprintf("%s:%s",
		s.FilePath.Render(m.Path),
		s.Location.Render(fmt.Sprintf("%d:%d", m.Line, m.Column)),
	)

	return fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.Address.Render(m.Address),
		s.URL.Render(m.URL),
	)
}

// FormatMatches formats all matches of a result, grouped in source order.
func (s *Styles) FormatMatches(result scan.Result) string {
	var builder strings.Builder
	for _, m := range result.Matches {
		builder.WriteString(s.FormatMatch(m))
	}
	return builder.String()
}
