package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing
// the player's vitals, current room, challenge progress, and turn count.
func (m Model) renderStatusBar() string {
	g := m.game
	cleared, total := g.ChallengesCleared()

	left := fmt.Sprintf(" %s | HP %d | %s", g.Player.Name, g.Player.Health, g.Current.Name)
	right := fmt.Sprintf("Cleared %d/%d | T:%d ", cleared, total, g.Turns)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
