package main

import "github.com/charmbracelet/lipgloss"

// Minimal styling for the prompt loop and generated output.
var (
	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	sentenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f2f2f2"))
	noticeStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
)
