package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacerun/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorShip:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorShipHurt:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorProjectile:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorAsteroid:     lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorEnemy:        lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorWeapon:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorHealth:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorExplosion:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorExplosionHot: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorStarDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorStarBright:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorHUD:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	core.ColorHUDAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
	core.ColorBoosted:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorOverlay:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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
