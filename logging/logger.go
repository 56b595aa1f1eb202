package logging

import (
	"path/filepath"
	"strings"
	"sync"
)

// Logger is a type that is responsible for storing and logging output from the
// compiler as necessary
type Logger struct {
	errorCount int // Total encountered errors
	LogLevel   int

	// warnings is a list of all warnings to be logged at the end of compilation
	warnings []LogMessage

	// buildPath is used to shorten display paths in errors
	buildPath string

	// m is the mutex used to synchonize the printing of error messages
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing compilation notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, compiler version and progress summary, closing message (DEFAULT)
)

// newLogger creates a new logger struct
func newLogger(buildPath string, loglevel int) *Logger {
	return &Logger{
		buildPath: buildPath,
		LogLevel:  loglevel,
		m:         &sync.Mutex{},
	}
}

// handleMsg prompts to logger to process a message -- this message could be
// coming in concurrently and so we need to make sure we are not printing
// multiple things at the same time
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			lm.display()
		}
	} else {
		l.warnings = append(l.warnings, lm)
	}
}

// flushWarnings displays all buffered warnings if the log level permits it
// and returns how many there were
func (l *Logger) flushWarnings() int {
	l.m.Lock()
	defer l.m.Unlock()

	if l.LogLevel >= LogLevelWarning {
		for _, w := range l.warnings {
			w.display()
		}
	}

	count := len(l.warnings)
	l.warnings = nil
	return count
}

// counts returns the current error and warning counts
func (l *Logger) counts() (int, int) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.errorCount, len(l.warnings)
}

// displayPath shortens a file path relative to the build path when the file
// lies inside it
func (l *Logger) displayPath(path string) string {
	if l.buildPath != "" {
		if rel, err := filepath.Rel(l.buildPath, path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}

	return filepath.Base(path)
}
