// Package console renders user-facing CLI messages with semantic colors.
// Diagnostic logging goes through zap; this package only covers the short
// status lines a person reads.
package console

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
)

// Successf prints a green status line to stderr
func Successf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a yellow status line to stderr
func Warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints a red status line to stderr
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Infof prints a blue status line to stderr
func Infof(format string, args ...any) {
	fmt.Fprintln(os.Stderr, infoStyle.Render(fmt.Sprintf(format, args...)))
}
