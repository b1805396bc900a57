package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle   = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorText)
	headerSectionStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	timerBadgeStyle = lipgloss.NewStyle().
			Foreground(colorPeach).
			Background(colorSurface0).
			Bold(true)

	jumpHeaderStyle  = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	jumpSectionStyle = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	jumpCurrentStyle = lipgloss.NewStyle().Foreground(colorPeach)
	jumpCursorStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	jumpHintStyle    = lipgloss.NewStyle().Foreground(colorMuted)
)
