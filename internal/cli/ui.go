package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleHeader      = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(18)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printHeader prints a section heading.
func printHeader(text string) {
	fmt.Println(StyleTitle.Render(text))
}

// printRow prints one table row with the given column widths.
func printRow(widths []int, cells []string, header bool) {
	line := ""
	for i, cell := range cells {
		style := StyleValue
		if header {
			style = styleHeader
		}
		line += style.Render(pad(cell, widths[i]))
	}
	fmt.Println(line)
}

// pad right-pads s with spaces to the given width, truncating if needed.
func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width-1] + " "
	}
	for len(s) < width {
		s += " "
	}
	return s
}
