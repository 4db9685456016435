// Package layout frames a practice screen: a title bar with the running
// score, the exercise area, and a line of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathex/internal/ui/theme"
)

// Smallest terminal the practice screen renders in.
const (
	MinWidth  = 40
	MinHeight = 12
)

// KeyHint is one "key action" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether width x height is below the minimum.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal, centered in the space
// that is available.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Window too small: %dx%d\nNeed at least %dx%d",
		width, height, MinWidth, MinHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).Render(msg))
}

var barStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder(), false, false, true, false).
	BorderForeground(theme.Border)

// RenderHeader renders "mathex · title" on the left and the ✓/✗ tally on
// the right, underlined.
func RenderHeader(title string, correct, wrong int, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("mathex") +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(" · "+title)
	right := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d", correct)) +
		" " + lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("✗ %d", wrong))

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return barStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// RenderFooter renders the key hints on one line.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(parts, desc.Render("  ·  ")))
}

// RenderFrame stacks header, content and footer, with the content centered
// in whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	middle := lipgloss.Place(width, body, lipgloss.Center, lipgloss.Center, content)
	return lipgloss.JoinVertical(lipgloss.Left, header, middle, footer)
}
