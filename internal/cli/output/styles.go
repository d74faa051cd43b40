package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	FilePath lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     lipgloss.NewStyle().Bold(true),
		FilePath: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}

// plainStyles returns styles with no rendering, for non-terminal modes.
func plainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Success:  plain,
		Error:    plain,
		Warning:  plain,
		Info:     plain,
		Muted:    plain,
		Bold:     plain,
		FilePath: plain,
	}
}
