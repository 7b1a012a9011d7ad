package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red
	Warning = lipgloss.Color("#F59E0B") // Amber
	Muted   = lipgloss.Color("#6B7280") // Gray
	Info    = lipgloss.Color("#3B82F6") // Blue
)

// Text styles
var Subtle = lipgloss.NewStyle().Foreground(Muted)

// UI element styles
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	SpinnerStyle = lipgloss.NewStyle().Foreground(Primary)
	StatusStyle  = lipgloss.NewStyle().Foreground(Muted)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
)

// Icon constants
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "⚠"
	IconInfo    = "ℹ"
	IconFolder  = "📁"
	IconTip     = "💡"
	IconWizard  = "🧙"
)
