// Package display provides terminal styling built on lipgloss.
//
// It respects the NO_COLOR environment variable (https://no-color.org/) and
// detects whether stdout is a terminal. Styling is automatically disabled when
// output is piped or redirected, or when NO_COLOR is set.
package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	boldStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	grayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// enabled reports whether styled output is active.
// It is set once at init time.
var enabled bool

func init() {
	enabled = shouldEnable()
}

// shouldEnable determines whether to use styled output.
func shouldEnable() bool {
	// Respect NO_COLOR (https://no-color.org/).
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	// Respect FORCE_COLOR for testing.
	if _, ok := os.LookupEnv("FORCE_COLOR"); ok {
		return true
	}
	// Disable styling when stdout is not a terminal (piped/redirected).
	return isTerminal(os.Stdout)
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// SetEnabled overrides the auto-detected styling state.
// Useful for testing or when --json forces plain output.
func SetEnabled(b bool) {
	enabled = b
}

// Enabled reports whether styled output is currently active.
func Enabled() bool {
	return enabled
}

// render applies a lipgloss style, only when styling is enabled.
func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Bold returns text rendered in bold.
func Bold(text string) string {
	return render(boldStyle, text)
}

// Dim returns text rendered in dim/faint.
func Dim(text string) string {
	return render(dimStyle, text)
}

// Green returns text rendered in green.
func Green(text string) string {
	return render(greenStyle, text)
}

// Yellow returns text rendered in yellow.
func Yellow(text string) string {
	return render(yellowStyle, text)
}

// Cyan returns text rendered in cyan.
func Cyan(text string) string {
	return render(cyanStyle, text)
}

// Gray returns text rendered in gray (bright black).
func Gray(text string) string {
	return render(grayStyle, text)
}

// Accent returns text rendered in the accent style (cyan + bold).
// Used for the active prayer highlight.
func Accent(text string) string {
	return render(accentStyle, text)
}

// Boldf formats and bolds a string.
func Boldf(format string, a ...interface{}) string {
	return Bold(fmt.Sprintf(format, a...))
}
