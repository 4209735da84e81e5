package ui

import "fmt"

// Unicode symbols for status indicators
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
)

// Successf returns a formatted success message with checkmark symbol
func Successf(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, fmt.Sprintf(format, args...))
}

// Errorf returns a formatted error message with X symbol
func Errorf(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s", SymbolError, fmt.Sprintf(format, args...))
}

// Warningf returns a formatted warning message with warning symbol
func Warningf(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s", SymbolWarning, fmt.Sprintf(format, args...))
}

// Header returns a styled section header
func Header(msg string) string {
	return Bold.Render(msg)
}

// AttrName returns an accent-styled attribute name
func AttrName(name string) string {
	return Accent.Render(name)
}

// Count returns a muted result count, e.g. "(12 results)"
func Count(n int) string {
	noun := "results"
	if n == 1 {
		noun = "result"
	}
	return Muted.Render(fmt.Sprintf("(%d %s)", n, noun))
}
