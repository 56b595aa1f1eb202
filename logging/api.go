package logging

// logger is a global reference to a shared Logger (created/initialized with the
// compiler, but separated for general usage).  It starts out verbose so that
// the logging functions are usable before `Initialize` is called.
var logger = newLogger("", LogLevelVerbose)

// Initialize initializes the global logger with the provided log level
func Initialize(buildPath string, loglevelname string) {
	var loglevel int
	switch loglevelname {
	case "silent":
		loglevel = LogLevelSilent
	case "error":
		loglevel = LogLevelError
	case "warn", "warning":
		loglevel = LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		loglevel = LogLevelVerbose
	}

	logger = newLogger(buildPath, loglevel)
}

// ShouldProceed indicates whether or not the log module has encountered an
// errors.  This is useful for sections of the compiler where multiple items are
// processed concurrently and having an error accumulator would be practical
func ShouldProceed() bool {
	errorCount, _ := logger.counts()
	return errorCount == 0
}

// ErrorCount returns the number of errors logged since initialization
func ErrorCount() int {
	errorCount, _ := logger.counts()
	return errorCount
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogCompileError logs and a compilation error (user-induced, bad code)
func LogCompileError(lctx *LogContext, message string, kind int, pos *TextPosition) {
	logger.handleMsg(&CompileMessage{
		Message:  message,
		Kind:     kind,
		Position: pos,
		Context:  lctx,
		IsError:  true,
	})
}

// LogCompileWarning logs a compilation warning (user-induced, problematic code)
func LogCompileWarning(lctx *LogContext, message string, kind int, pos *TextPosition) {
	logger.handleMsg(&CompileMessage{
		Message:  message,
		Kind:     kind,
		Position: pos,
		Context:  lctx,
		IsError:  false,
	})
}

// LogConfigError logs an error related to project or compiler configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogBuildWarning logs a warning in the build process
func LogBuildWarning(kind, warning string) {
	logger.handleMsg(&BuildWarning{Kind: kind, Message: warning})
}

// LogFatal logs a fatal compilation error that was not expected: ie. the
// compiler did something it wasn't supposed to.  It never returns.
func LogFatal(message string) {
	displayEndPhase(false)
	displayFatalError(message)
	panic("fatal: " + message)
}

// LogCompileHeader displays the compiler version and the selected profile
func LogCompileHeader(project, profile string) {
	if logger.LogLevel == LogLevelVerbose {
		displayCompileHeader(project, profile)
	}
}

// LogBeginPhase displays the start of a compilation phase
func LogBeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// LogEndPhase displays the (successful) end of the current phase
func LogEndPhase() {
	if logger.LogLevel == LogLevelVerbose {
		displayEndPhase(true)
	}
}

// LogCompilationFinished displays any buffered warnings followed by the
// closing summary of the compilation
func LogCompilationFinished() {
	warningCount := logger.flushWarnings()
	errorCount, _ := logger.counts()

	if logger.LogLevel > LogLevelSilent {
		displayCompilationFinished(errorCount == 0, errorCount, warningCount)
	}
}
