package logger

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes, blanked when stdout is not a terminal.
var (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	cyan   = "\033[36m"
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		reset, bold, dim, cyan, green, yellow, red = "", "", "", "", "", "", ""
	}
}

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Printf("%s%sfrontier-mapgen%s %s%s%s\n", bold, cyan, reset, dim, version, reset)
}

// Info logs a tagged informational message.
func Info(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", cyan, tag, reset, msg)
}

// Success logs a tagged success message.
func Success(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", green, tag, reset, msg)
}

// Warn logs a tagged warning.
func Warn(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", yellow, tag, reset, msg)
}

// Error logs a tagged error.
func Error(tag, msg string) {
	fmt.Fprintf(os.Stderr, "%s[%s]%s %s\n", red, tag, reset, msg)
}

// Section prints a section divider.
func Section(title string) {
	fmt.Printf("\n%s%s── %s ──%s\n", bold, dim, title, reset)
}

// Stats prints an aligned key/count line.
func Stats(key string, n int) {
	fmt.Printf("  %-16s %d\n", key, n)
}
