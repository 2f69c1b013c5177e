package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/l1jgo/bestiary/internal/recall"
)

var colorStyles = map[recall.Color]lipgloss.Style{
	recall.Green:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	recall.Yellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	recall.Orange:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	recall.Red:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	recall.Blue:       lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	recall.LightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	recall.LightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	recall.Violet:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
}

// styled renders s in the terminal color for c. White text is left plain.
func styled(c recall.Color, s string) string {
	st, ok := colorStyles[c]
	if !ok {
		return s
	}
	return st.Render(s)
}
