package logging

// LogMessage is any message the logger can process
type LogMessage interface {
	display()
	isError() bool
}

// CompileMessage is an error or warning produced while compiling a source
type CompileMessage struct {
	Message  string
	Kind     int
	Position *TextPosition
	Context  *LogContext
	IsError  bool
}

func (cm *CompileMessage) isError() bool {
	return cm.IsError
}

// ConfigError is an error in the project configuration or the environment
type ConfigError struct {
	Kind    string
	Message string
}

func (ce *ConfigError) isError() bool {
	return true
}

// BuildWarning is a non-fatal problem with the build itself
type BuildWarning struct {
	Kind    string
	Message string
}

func (bw *BuildWarning) isError() bool {
	return false
}

// Enumeration of the kinds of compile messages
const (
	LMKToken   = iota // malformed tokens
	LMKSyntax         // parse failures
	LMKDef            // duplicate definitions
	LMKName           // unresolved names
	LMKTyping         // type mismatches
	LMKImmut          // assignment to immutable bindings
	LMKUsage          // `break` and `return` outside their context
	LMKArg            // wrong number of arguments
)
