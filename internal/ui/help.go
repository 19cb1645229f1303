package ui

import (
	_ "embed"
	"strings"
)

//go:embed help.txt
var helpText string

// HelpLines returns the embedded help text as display lines.
func HelpLines() []string {
	return strings.Split(strings.TrimRight(helpText, "\n"), "\n")
}
