// Package ascii draws the text banner printed at the top of the report.
package ascii

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the minimum width of the banner rule.
const DefaultWidth = 50

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Banner returns the three banner lines: a rule, the title centred under it,
// and a closing rule.
//
// Parameters:
//   - title: The banner text, which may contain wide runes or ANSI colour codes
//   - width: Minimum rule width; the rule grows to fit a longer title
//
// Returns:
//   - A slice of three strings, one per output line
func Banner(title string, width int) []string {
	titleWidth := VisibleWidth(title)
	if width < titleWidth {
		width = titleWidth
	}
	rule := strings.Repeat("=", width)
	pad := (width - titleWidth) / 2
	return []string{
		rule,
		strings.Repeat(" ", pad) + title,
		rule,
	}
}

// VisibleWidth calculates the terminal width of a string excluding ANSI
// escape codes. Wide runes such as emoji count as two columns.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}
