package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#263238")
	Foreground = lipgloss.Color("#EEFFFF")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	// Normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Spinner and loading line
	LoadingStyle = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	// Status styles
	StatusAlive = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusDead = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Dropdown box
	DropdownStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Focused dropdown
	FocusedDropdownStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)

	// Highlighted option
	ActiveOptionStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Background(lipgloss.Color("#37474F")).
				Padding(0, 1).
				Bold(true)

	InactiveOptionStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 1)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)

// Helper functions

// StatusStyle colours a raw server status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "Alive":
		return StatusAlive
	case "Dead":
		return StatusDead
	default:
		return MutedStyle
	}
}

// Table header and selection
func TableStyles(focused bool) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	if focused {
		s.Selected = s.Selected.Background(lipgloss.Color("57"))
	}
	return s
}
