package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bookrun/internal/core"
)

// Palette maps engine colors to terminal styles. Colors missing from the
// palette are drawn unstyled.
type Palette map[core.Color]lipgloss.Style

// DefaultPalette returns the game's colors: brown shelf, gray stones, green
// grass, red bugs and a bright cyan player.
func DefaultPalette() Palette {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{
		core.ColorRed:          fg("1"),
		core.ColorGreen:        fg("2"),
		core.ColorYellow:       fg("3"),
		core.ColorWhite:        fg("7"),
		core.ColorGray:         fg("245"),
		core.ColorBrown:        fg("94"),
		core.ColorBrightRed:    fg("9").Bold(true),
		core.ColorBrightYellow: fg("11").Bold(true),
		core.ColorBrightCyan:   fg("14").Bold(true),
		core.ColorBrightWhite:  fg("15"),
	}
}

// MonoPalette draws everything in the terminal's default color.
func MonoPalette() Palette {
	return Palette{}
}

// render applies the style for c, or returns text as is.
func (p Palette) render(c core.Color, text string) string {
	if style, ok := p[c]; ok && c != core.ColorDefault {
		return style.Render(text)
	}
	return text
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run, which keeps the
// number of escape sequences down.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run.Reset()
		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(p.render(runColor, run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(p.render(runColor, run.String()))
	}
	return sb.String()
}
