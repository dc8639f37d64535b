// Package styles provides Lip Gloss styles for the marbles TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Table styles.
var (
	// TableBorderStyle colors the table borders.
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(BorderColor)

	// TableHeaderStyle is for table header cells.
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true).
				Padding(0, 1)

	// TableCellStyle is for table body cells.
	TableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// Roll animation styles.
var (
	// RollTitleStyle is for the animation's title line.
	RollTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	// RollCountStyle highlights the choice count in the title.
	RollCountStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// ShatterStyle marks a preview row as it is discarded.
	ShatterStyle = lipgloss.NewStyle().
			Foreground(Error).
			Strikethrough(true)

	// RevealStyle is for the final drawn marble.
	RevealStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true).
			Reverse(true).
			Padding(0, 1)

	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)
)
