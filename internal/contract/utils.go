package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Attainment label constants.
const (
	AheadValue    = "Ahead"    // At or above plan
	OnTrackValue  = "On Track" // Within striking distance of plan
	BehindValue   = "Behind"   // Meaningfully behind plan
	CriticalValue = "Critical" // Far behind plan
)

// Color variables for console output.
var (
	AheadColor    = color.New(color.FgGreen, color.Bold) // aheadColor celebrates plan attainment.
	OnTrackColor  = color.New(color.FgCyan)              // onTrackColor is an informational signal.
	BehindColor   = color.New(color.FgYellow)            // behindColor represents standard caution, not bold.
	CriticalColor = color.New(color.FgRed, color.Bold)   // criticalColor represents standard danger.
)

// GetPlainLabel returns a plain text label for a rep's percent-to-plan.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(percentToPlan float64) string {
	switch {
	case percentToPlan >= 100:
		return AheadValue
	case percentToPlan >= 70:
		return OnTrackValue
	case percentToPlan >= 40:
		return BehindValue
	default:
		return CriticalValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(percentToPlan float64) string {
	text := GetPlainLabel(percentToPlan)

	switch text {
	case AheadValue:
		return AheadColor.Sprint(text)
	case OnTrackValue:
		return OnTrackColor.Sprint(text)
	case BehindValue:
		return BehindColor.Sprint(text)
	default: // "Critical"
		return CriticalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path, falling back to os.Stdout when the path is empty.
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

// GetDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".stackrank_snapshots.db"
	}
	dir := filepath.Join(homeDir, ".stackrank")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ".stackrank_snapshots.db"
	}
	return filepath.Join(dir, "snapshots.db")
}

// ParseBoolString parses yes/no style flag values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "y", "true", "1", "on":
		return true, nil
	case "no", "n", "false", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("expected yes or no, got %q", s)
}
