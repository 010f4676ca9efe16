package main

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	cellW  = 9 // width of each step column in characters
	labelW = 6 // visual width of qubit label area
	nameW  = 4 // width of gate name inside box
)

// Lipgloss styles used across the TUI.
var (
	circuitStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(1)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bb9af7")).
			Padding(1)

	controlsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	qubitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ece6a"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e"))
)
