package prompt

import "github.com/charmbracelet/lipgloss"

var (
	docStyle         = lipgloss.NewStyle().Margin(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
