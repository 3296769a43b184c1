// Package layout draws the chrome around the active screen: a one-line
// header, the screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkpoint/internal/ui/theme"
)

// The smallest terminal a quiz card fits in.
const (
	MinWidth  = 50
	MinHeight = 14
)

const appName = "Checkpoint"

type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal, centered in the space
// available.
func RenderMinSizeMessage(width, height int) string {
	msg := theme.Body.Render(fmt.Sprintf("Terminal too small (%dx%d).", width, height)) + "\n" +
		theme.Hint.Render(fmt.Sprintf("Checkpoint needs at least %dx%d.", MinWidth, MinHeight))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// RenderHeader puts the app name left, title centered and status right on
// a single bar.
func RenderHeader(title, status string, width int) string {
	inner := max(width-theme.Bar.GetHorizontalPadding(), 0)

	name := theme.Heading.Render(appName)
	right := theme.Status.Render(status)
	side := max(lipgloss.Width(name), lipgloss.Width(right))

	middle := max(inner-2*side, 0)
	line := lipgloss.PlaceHorizontal(side, lipgloss.Left, name) +
		lipgloss.PlaceHorizontal(middle, lipgloss.Center, theme.Body.Render(title)) +
		lipgloss.PlaceHorizontal(side, lipgloss.Right, right)

	return theme.Bar.Width(width).MaxHeight(1).Render(line)
}

// RenderFooter lists hints left to right. Hints that do not fit in width
// are dropped from the end.
func RenderFooter(hints []KeyHint, width int) string {
	inner := max(width-theme.Bar.GetHorizontalPadding(), 0)
	const gap = "   "

	var b strings.Builder
	for _, h := range hints {
		part := theme.KeyCap.Render(h.Key) + " " + theme.Dimmed.Render(h.Description)
		sep := ""
		if b.Len() > 0 {
			sep = gap
		}
		if lipgloss.Width(b.String())+lipgloss.Width(sep+part) > inner {
			break
		}
		b.WriteString(sep + part)
	}
	return theme.Bar.Width(width).Render(b.String())
}

// RenderFrame stacks header, content and footer, giving the content all
// rows the other two leave.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).MaxHeight(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
