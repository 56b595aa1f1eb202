package logging

import (
	"cloudscribe/common"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------
// This section contains all the display functions for the different kinds of
// messages that can be logged.

func (ce *ConfigError) display() {
	PrintErrorMessage(ce.Kind+" Error", errors.New(ce.Message))
}

func (bw *BuildWarning) display() {
	PrintWarningMessage(bw.Kind+" Warning", bw.Message)
}

var compileMsgStrings = map[int]string{
	LMKToken:  "Token",
	LMKSyntax: "Syntax",
	LMKDef:    "Definition",
	LMKName:   "Name",
	LMKTyping: "Type",
	LMKImmut:  "Mutability",
	LMKUsage:  "Usage",
	LMKArg:    "Argument",
}

func (cm *CompileMessage) display() {
	cm.displayBanner()

	if cm.Position != nil {
		fmt.Printf("%s: %s\n", cm.Position, cm.Message)
		cm.displayCodeSelection()
	} else {
		fmt.Println(cm.Message)
	}
}

// displayBanner displays the banner on top of all compilation messages
func (cm *CompileMessage) displayBanner() {
	fmt.Print("\n\n-- ")
	kindStr := compileMsgStrings[cm.Kind]
	kindLen := len(kindStr)
	if cm.isError() {
		ErrorStyleBG.Print(kindStr + " Error")
		kindLen += 6
	} else {
		WarnStyleBG.Print(kindStr + " Warning")
		kindLen += 8
	}

	fmt.Print(" ")

	fileName := "<input>"
	if cm.Context != nil && cm.Context.FilePath != "" {
		fileName = logger.displayPath(cm.Context.FilePath)
	}

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 3 {
		dashCount = 3
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)
}

// displayCodeSelection displays the erroneous code (with line numbers) and
// highlights the appropriate sections
func (cm *CompileMessage) displayCodeSelection() {
	if cm.Context == nil || cm.Context.Source == "" {
		return
	}

	fmt.Println()

	srcLines := strings.Split(cm.Context.Source, "\n")
	if cm.Position.StartLn < 1 || cm.Position.EndLn > len(srcLines) || cm.Position.StartLn > cm.Position.EndLn {
		return
	}

	// columns count runes so lines are handled as rune slices
	lines := make([][]rune, cm.Position.EndLn-cm.Position.StartLn+1)
	for i := range lines {
		lines[i] = []rune(strings.TrimRight(srcLines[cm.Position.StartLn-1+i], "\r"))
	}

	// calculate whitespace to trim
	minWhitespace := -1
	for _, line := range lines {
		leadingWhitespace := len(line) - len([]rune(strings.TrimLeft(string(line), " \t")))

		if minWhitespace == -1 || minWhitespace > leadingWhitespace {
			minWhitespace = leadingWhitespace
		}
	}

	// calculate the amount to pad line numbers by and use it to build a padding
	// format string (so we can use it to print out line numbers neatly)
	maxLineNumberWidth := len(strconv.Itoa(cm.Position.EndLn)) + 1
	lineNumberFmtStr := "%-" + strconv.Itoa(maxLineNumberWidth) + "v"

	// print each line followed by the line of selecting carets
	for i, line := range lines {
		line = line[minWhitespace:]

		InfoColorFG.Print(fmt.Sprintf(lineNumberFmtStr, i+cm.Position.StartLn))
		fmt.Print("|  ")
		fmt.Println(string(line))

		fmt.Print(strings.Repeat(" ", maxLineNumberWidth), "|  ")

		start, end := 0, len(line)
		if i == 0 {
			start = cm.Position.StartCol - minWhitespace
		}

		if i == len(lines)-1 {
			end = cm.Position.EndCol - minWhitespace
		}

		if start < 0 {
			start = 0
		} else if start > len(line) {
			start = len(line)
		}

		if end <= start {
			end = start + 1
		}

		// tabs are kept in the caret prefix so the carets line up with the
		// text however the terminal renders them
		prefix := make([]rune, start)
		for j := range prefix {
			if line[j] == '\t' {
				prefix[j] = '\t'
			} else {
				prefix[j] = ' '
			}
		}

		fmt.Print(string(prefix))
		ErrorColorFG.Println(strings.Repeat("^", end-start))
	}

	fmt.Println()
}

const fatalErrorPostlude = `
This is likely a bug in the compiler.
Please open an issue with the source that triggered it.`

func displayFatalError(msg string) {
	fmt.Print("\n\n")
	ErrorStyleBG.Print("Fatal Error ")
	ErrorColorFG.Println(msg)
	InfoColorFG.Println(fatalErrorPostlude)
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays all the compiler information before starting
// compilation
func displayCompileHeader(project, profile string) {
	fmt.Print("scribe ")
	InfoColorFG.Print("v" + common.ScribeVersion)
	fmt.Print(" -- project: ")
	InfoColorFG.Print(project)
	fmt.Print(" -- profile: ")
	InfoColorFG.Println(profile)
}

// phase is the build phase currently displayed with a spinner
type phase struct {
	name    string
	started time.Time
	spinner *pterm.SpinnerPrinter
}

var currentPhase *phase

// phaseColumn is the width phase names are padded to so their timings line up
const phaseColumn = len("Compiling") + 2

func phaseLabel(name string) string {
	if len(name) >= phaseColumn {
		return name + "  "
	}

	return name + strings.Repeat(" ", phaseColumn-len(name))
}

func resultPrinter(style *pterm.Style, text string) *pterm.PrefixPrinter {
	return &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: style, Text: text},
	}
}

func displayBeginPhase(name string) {
	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))
	spinner.SuccessPrinter = resultPrinter(SuccessStyleBG, "Done")
	spinner.FailPrinter = resultPrinter(ErrorStyleBG, "Fail")

	currentPhase = &phase{name: name}
	currentPhase.spinner, _ = spinner.Start(name + "..." + strings.Repeat(" ", phaseColumn-len(name)))
	currentPhase.started = time.Now()
}

// displayEndPhase stops the spinner of the current phase if there is one
func displayEndPhase(success bool) {
	if currentPhase == nil || currentPhase.spinner == nil {
		currentPhase = nil
		return
	}

	label := phaseLabel(currentPhase.name)
	if success {
		elapsed := time.Since(currentPhase.started).Seconds()
		currentPhase.spinner.Success(label, fmt.Sprintf("(%.3fs)", elapsed))
	} else {
		currentPhase.spinner.Fail(label)
	}

	currentPhase = nil
}

// printCount prints `n noun` with the count colored by `color` when it is
// non-zero
func printCount(n int, noun string, color pterm.Color) {
	if n == 0 {
		SuccessColorFG.Print(0)
	} else {
		color.Print(n)
	}

	if n == 1 {
		fmt.Print(" " + noun)
	} else {
		fmt.Print(" " + noun + "s")
	}
}

func displayCompilationFinished(success bool, errorCount, warningCount int) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")
	printCount(errorCount, "error", ErrorColorFG)
	fmt.Print(", ")
	printCount(warningCount, "warning", WarnColorFG)
	fmt.Println(")")
}
