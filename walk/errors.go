package walk

import (
	"cloudscribe/logging"
	"cloudscribe/syntax"
	"fmt"
)

// SemanticError is the first semantic error found in a program.  It halts
// analysis of the whole file.
type SemanticError struct {
	Message  string
	Kind     int
	Position *logging.TextPosition
}

func (se *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", se.Position, se.Message)
}

// kinds of semantic errors, named locally for brevity
const (
	defKind   = logging.LMKDef
	nameKind  = logging.LMKName
	typeKind  = logging.LMKTyping
	immutKind = logging.LMKImmut
	usageKind = logging.LMKUsage
	argKind   = logging.LMKArg
)

// raise aborts the current analysis with a semantic error positioned over
// `at`.  It is caught by `catchErrors` at the entry to the walker.
func raise(at syntax.ASTNode, kind int, msg string, a ...interface{}) {
	panic(&SemanticError{
		Message:  fmt.Sprintf(msg, a...),
		Kind:     kind,
		Position: at.Position(),
	})
}

// catchErrors recovers a raised semantic error and stores it in `err`.  Any
// other panic is a bug in the compiler and is propagated.
func catchErrors(err *error) {
	if x := recover(); x != nil {
		if se, ok := x.(*SemanticError); ok {
			*err = se
			return
		}

		panic(x)
	}
}
