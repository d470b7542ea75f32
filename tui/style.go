package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleRoomName = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleTerminal = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindRoomName
	kindCombat
	kindHint
	kindError
	kindTerminal
)

// classifyLine determines what kind of output line this is, based on
// the message shapes the engine produces.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "== ") && strings.HasSuffix(line, " =="):
		return kindRoomName
	case strings.HasPrefix(line, "***"):
		return kindTerminal
	case strings.HasPrefix(line, "You hit"),
		strings.HasPrefix(line, "The ") && strings.Contains(line, "strikes back"),
		strings.Contains(line, "blocks your path"),
		strings.Contains(line, "collapses!"):
		return kindCombat
	case strings.HasPrefix(line, "("):
		return kindHint
	case strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "I don't understand"),
		strings.HasPrefix(line, "That's not it"),
		strings.HasPrefix(line, "There is no"),
		strings.HasPrefix(line, "Something here still bars"),
		strings.HasPrefix(line, "Something went wrong"):
		return kindError
	default:
		return kindNarrative
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindRoomName:
		return styleRoomName.Render(line)
	case kindCombat:
		return styleCombat.Render(line)
	case kindHint:
		return styleHint.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTerminal:
		return styleTerminal.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}
