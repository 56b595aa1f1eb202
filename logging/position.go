package logging

import "fmt"

// TextPosition is a span of source text.  Lines start at 1; columns start at 0
// and `EndCol` is exclusive.
type TextPosition struct {
	StartLn, StartCol int
	EndLn, EndCol     int
}

// String formats the start of the position as `line:column` with a 1-based
// column, the form used in every user-facing error.
func (tp *TextPosition) String() string {
	return fmt.Sprintf("%d:%d", tp.StartLn, tp.StartCol+1)
}

// SpanOver returns a position that starts at `start` and ends at `end`
func SpanOver(start, end *TextPosition) *TextPosition {
	return &TextPosition{
		StartLn:  start.StartLn,
		StartCol: start.StartCol,
		EndLn:    end.EndLn,
		EndCol:   end.EndCol,
	}
}

// LogContext identifies the source a message refers to.  The source text is
// kept in memory so that messages can display an excerpt without reopening the
// file (sources entered at the REPL have no file at all).
type LogContext struct {
	// FileID is the ID of the file being compiled (0 for REPL input)
	FileID uint

	// FilePath is the display path of the source
	FilePath string

	// Source is the full text of the source
	Source string
}
