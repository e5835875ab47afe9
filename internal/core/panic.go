package core

import (
	"log"
	"os"
	"runtime/debug"
)

// exit is swapped out in tests.
var exit = os.Exit

// ReportPanic logs a recovered panic together with its stack and terminates
// the process with status 2. It must be deferred directly:
//
//	defer core.ReportPanic(logger)
func ReportPanic(logger *log.Logger) {
	r := recover()
	if r == nil {
		return
	}
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("panic: %v\n%s", r, debug.Stack())
	exit(2)
}
