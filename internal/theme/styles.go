package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/trailhook/internal/domain"
)

// Main output styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Git diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)
)

// EventTypeStyle returns the style for an event type, colored by its owner
func EventTypeStyle(t domain.EventType) lipgloss.Style {
	owner, ok := domain.OwnerOf(t)
	switch {
	case !ok:
		return lipgloss.NewStyle().Foreground(ColorUnowned)
	case owner == domain.OwnerGitHooks:
		return lipgloss.NewStyle().Foreground(ColorGitHooks).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorHookDispatcher).Bold(true)
	}
}

// StateStyle returns the style for a session state
func StateStyle(s domain.SessionState) lipgloss.Style {
	switch s {
	case domain.StateRunning:
		return lipgloss.NewStyle().Foreground(ColorRunning)
	case domain.StateDraining:
		return lipgloss.NewStyle().Foreground(ColorDraining)
	case domain.StateTerminated:
		return lipgloss.NewStyle().Foreground(ColorTerminated)
	default:
		return lipgloss.NewStyle().Foreground(ColorIdle)
	}
}
