package render

import "github.com/charmbracelet/lipgloss"

// Styles groups the per-character rendering styles.
type Styles struct {
	Correct        lipgloss.Style
	Incorrect      lipgloss.Style
	IncorrectSpace lipgloss.Style
	Pending        lipgloss.Style
}

// DefaultStyles returns the white/red/red-block/gray scheme.
func DefaultStyles() Styles {
	return Styles{
		Correct:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Incorrect:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		IncorrectSpace: lipgloss.NewStyle().Background(lipgloss.Color("1")),
		Pending:        lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
}
