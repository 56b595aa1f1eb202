package logging

import (
	"path/filepath"
	"testing"
)

func TestLoggerCountsErrors(t *testing.T) {
	Initialize("", "silent")

	if !ShouldProceed() {
		t.Fatal("fresh logger should allow proceeding")
	}

	lctx := &LogContext{FilePath: "main.scribe", Source: "break;"}
	LogCompileError(lctx, "Break can only appear in a loop", LMKUsage, &TextPosition{StartLn: 1, StartCol: 0, EndLn: 1, EndCol: 5})
	LogBuildWarning("Project", "version mismatch")

	if ShouldProceed() {
		t.Error("logger should not proceed after an error")
	}

	if ErrorCount() != 1 {
		t.Errorf("expected 1 error, got %d", ErrorCount())
	}

	if n := logger.flushWarnings(); n != 1 {
		t.Errorf("expected 1 buffered warning, got %d", n)
	}
}

func TestLogLevelNames(t *testing.T) {
	cases := map[string]int{
		"silent":  LogLevelSilent,
		"error":   LogLevelError,
		"warn":    LogLevelWarning,
		"verbose": LogLevelVerbose,
		"bogus":   LogLevelVerbose,
	}

	for name, level := range cases {
		Initialize("", name)
		if logger.LogLevel != level {
			t.Errorf("level %q: expected %d, got %d", name, level, logger.LogLevel)
		}
	}
}

func TestTextPositionString(t *testing.T) {
	pos := SpanOver(&TextPosition{StartLn: 3, StartCol: 4, EndLn: 3, EndCol: 5}, &TextPosition{StartLn: 4, StartCol: 0, EndLn: 4, EndCol: 9})

	if pos.String() != "3:5" {
		t.Errorf("expected 3:5, got %s", pos)
	}

	if pos.EndLn != 4 || pos.EndCol != 9 {
		t.Errorf("span end is wrong: %+v", pos)
	}
}

func TestDisplayPath(t *testing.T) {
	l := newLogger(filepath.Join("home", "proj"), LogLevelSilent)

	if got := l.displayPath(filepath.Join("home", "proj", "src", "main.scribe")); got != filepath.Join("src", "main.scribe") {
		t.Errorf("paths inside the build path should be relative, got %s", got)
	}

	if got := l.displayPath(filepath.Join("elsewhere", "util.scribe")); got != "util.scribe" {
		t.Errorf("paths outside the build path should be shortened to their base, got %s", got)
	}
}
