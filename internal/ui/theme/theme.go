package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, chalkboard tones.
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky
	Secondary = lipgloss.Color("#A3E635") // Lime
	Accent    = lipgloss.Color("#FACC15") // Chalk yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F1F5F9") // Chalk
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#374151") // Frame
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Expression = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Enabled controls Paint. Commands turn it off for --color=never and for
// output that is not a terminal.
var Enabled = true

// Paint renders s with style when styling is enabled, and returns s
// unchanged otherwise.
func Paint(style lipgloss.Style, s string) string {
	if !Enabled {
		return s
	}
	return style.Render(s)
}
