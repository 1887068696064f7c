package ui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("27")).
			Padding(0, 2)

	controlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	pendingStyle = lipgloss.NewStyle().
			Faint(true)

	badgeTodo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	badgeInProgress = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	badgeDone = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("28")).
				Padding(0, 1)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("124")).
			Padding(0, 1)

	toastInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("25")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160"))

	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("27"))

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	fieldFocusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)
