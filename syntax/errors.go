package syntax

import (
	"cloudscribe/logging"
	"fmt"
)

// SyntaxError is an error produced while scanning or parsing a source.  It is
// the first (and only) error reported for that source.
type SyntaxError struct {
	Message  string
	Kind     int
	Position *logging.TextPosition

	// Incomplete is set if the source ended before the construct being
	// parsed was finished: more input could make the source valid
	Incomplete bool
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", se.Position, se.Message)
}

// newSyntaxError creates a new syntax error with a formatted message
func newSyntaxError(kind int, pos *logging.TextPosition, msg string, a ...interface{}) *SyntaxError {
	return &SyntaxError{
		Message:  fmt.Sprintf(msg, a...),
		Kind:     kind,
		Position: pos,
	}
}
