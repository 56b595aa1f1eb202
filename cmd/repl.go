package cmd

import (
	"cloudscribe/build"
	"cloudscribe/common"
	"cloudscribe/logging"
	"cloudscribe/syntax"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	replHistoryFile = ".scribe_history"
	replPrompt      = "scribe> "
	replContPrompt  = "    ... "
)

// execReplCommand runs the interactive loop.  Every program entered is compiled
// on its own and its output printed; nothing carries over between programs.
func execReplCommand(loglevel string) {
	logging.Initialize("", loglevel)
	logging.PrintInfoMessage("CloudScribe", "v"+common.ScribeVersion+" -- type :help for commands")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, replHistoryFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	optimize := true
	for n := 1; ; n++ {
		src, ok := readProgram(ln)
		if !ok {
			fmt.Println()
			return
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			switch trimmed {
			case ":quit", ":q":
				return
			case ":opt":
				optimize = !optimize
				fmt.Printf("optimization %s\n", onOff(optimize))
			case ":help":
				fmt.Println(":opt   toggle the optimizer")
				fmt.Println(":quit  exit the REPL")
			default:
				fmt.Println("unknown command; type :help for commands")
			}

			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		lctx := &logging.LogContext{FilePath: fmt.Sprintf("<repl:%d>", n), Source: src}
		res, err := build.CompileSource(lctx, build.Options{Optimize: optimize})
		if err != nil {
			build.ReportError(lctx, err)
			continue
		}

		fmt.Println(res.Output)
	}
}

// readProgram reads lines until they form a program that either parses or
// fails for a reason other than ending too early.  It returns false when the
// input is closed.
func readProgram(ln *liner.State) (string, bool) {
	var sb strings.Builder

	for {
		prompt := replPrompt
		if sb.Len() > 0 {
			prompt = replContPrompt
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		} else if errors.Is(err, liner.ErrPromptAborted) {
			// ctrl-c discards the pending program
			return "", true
		} else if err != nil {
			return "", false
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		src := sb.String()
		if sb.Len() == len(line) && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return src, true
		}

		if strings.TrimSpace(src) == "" || !needsMoreInput(src) {
			return src, true
		}
	}
}

// needsMoreInput reports whether a source ends in the middle of a construct
func needsMoreInput(src string) bool {
	_, err := syntax.Parse(&logging.LogContext{Source: src})

	var se *syntax.SyntaxError
	return errors.As(err, &se) && se.Incomplete
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}
