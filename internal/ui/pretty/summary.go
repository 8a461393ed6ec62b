package pretty

import (
	"fmt"
	"os"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/yaklabco/mdlinkify/pkg/scan"
)

const (
	defaultWrapWidth = 80
	wordFile         = "file"
	wordFiles        = "files"
)

// FormatSummary formats run statistics as a single wrapped line.
// Example: "3 email autolinks in 2 files".
func (s *Styles) FormatSummary(result scan.Result) string {
	fileWord := wordFiles
	if result.FilesScanned == 1 {
		fileWord = wordFile
	}

	var msg string
	if len(result.Matches) == 0 {
		msg = s.Dim.Render(fmt.Sprintf("No email autolinks found (%d %s scanned)",
			result.FilesScanned, fileWord))
	} else {
		linkWord := "autolinks"
		if len(result.Matches) == 1 {
			linkWord = "autolink"
		}
		msg = s.Success.Render(fmt.Sprintf("%d email %s", len(result.Matches), linkWord)) +
			s.Dim.Render(fmt.Sprintf(" in %d %s", result.FilesScanned, fileWord))
	}

	return wordwrap.String(msg, terminalWidth()) + "\n"
}

// terminalWidth returns the stdout terminal width, or a default when
// stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWrapWidth
	}
	return width
}
