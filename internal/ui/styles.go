// Package ui holds terminal presentation helpers shared by the qg commands.
package ui

import "fmt"

// ANSI256 color codes.
const (
	colorDone  = 114 // green
	colorWork  = 179 // amber
	colorMuted = 245 // medium gray
)

var noColor bool

// RenderDone returns s in the done (green) color.
func RenderDone(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorDone, s)
}

// RenderInProgress returns s in the in-progress (amber) color.
func RenderInProgress(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorWork, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorMuted, s)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
