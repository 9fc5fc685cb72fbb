package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-division/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorUnit:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorUnitDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
	core.ColorContainer:   lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorHeadline:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorSuccess:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorFailure:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorMessage:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorDigit:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorDigitActive: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true),
	core.ColorButton:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorDisabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
