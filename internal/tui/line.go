package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// truncateLine keeps a rendered row on a single visual line and inside the
// pane width, terminating ANSI styling so colors don't bleed into the next
// row.
func truncateLine(line string, width int) string {
	line = strings.ReplaceAll(line, "\n", " ")
	line = strings.ReplaceAll(line, "\r", " ")
	if width > 0 && xansi.StringWidth(line) > width {
		line = xansi.Cut(line, 0, width) + "\x1b[0m"
	}
	return line
}
