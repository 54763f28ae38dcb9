package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Business-likelihood label constants.
const (
	StrongValue   = "Strong"   // Strong business signal
	LikelyValue   = "Likely"   // Likely business signal
	PossibleValue = "Possible" // Possible business signal
	WeakValue     = "Weak"     // Weak or no business signal
)

// Color variables for console output.
var (
	StrongColor   = color.New(color.FgGreen, color.Bold) // strongColor marks high-confidence matches.
	LikelyColor   = color.New(color.FgCyan, color.Bold)  // likelyColor marks solid matches.
	PossibleColor = color.New(color.FgYellow)            // possibleColor marks borderline matches.
	WeakColor     = color.New(color.FgWhite)             // weakColor marks low-signal rows.
)

// GetPlainLabel returns a plain text label for a business score. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score int) string {
	switch {
	case score >= 10:
		return StrongValue
	case score >= 6:
		return LikelyValue
	case score >= 3:
		return PossibleValue
	default:
		return WeakValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score int) string {
	text := GetPlainLabel(score)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case LikelyValue:
		return LikelyColor.Sprint(text)
	case PossibleValue:
		return PossibleColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncatePath truncates a path or name to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is room for both the "..." prefix and at
// least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
