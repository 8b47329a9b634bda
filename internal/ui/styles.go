package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used across the CLI output.

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
)

// Success renders s in the success style.
func Success(s string) string { return successStyle.Render(s) }

// Error renders s in the error style.
func Error(s string) string { return errorStyle.Render(s) }

// Warning renders s in the warning style.
func Warning(s string) string { return warningStyle.Render(s) }

// Header renders s as a section header.
func Header(s string) string { return headerStyle.Render(s) }

// Detail renders s in a muted style for secondary output.
func Detail(s string) string { return detailStyle.Render(s) }
