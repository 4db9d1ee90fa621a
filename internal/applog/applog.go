// Package applog prints the CLI's leveled progress narration
// ("Connecting to BDI loader", "Erasing CPLD", ...), matching
// bdisetup.c's plain stdout printf calls with no timestamp prefix.
package applog

import (
	"log"
	"os"
)

var (
	infoLog = log.New(os.Stdout, "", 0)
	warnLog = log.New(os.Stderr, "warning: ", 0)
	errLog  = log.New(os.Stderr, "error: ", 0)
)

// Info prints a progress message to stdout.
func Info(format string, args ...interface{}) {
	infoLog.Printf(format, args...)
}

// Warn prints a non-fatal problem to stderr.
func Warn(format string, args ...interface{}) {
	warnLog.Printf(format, args...)
}

// Error prints a fatal problem to stderr before the process exits.
func Error(format string, args ...interface{}) {
	errLog.Printf(format, args...)
}
