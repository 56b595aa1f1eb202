package cmd

import (
	"cloudscribe/build"
	"cloudscribe/common"
	"cloudscribe/logging"
	"cloudscribe/mods"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/kr/pretty"
)

// Execute runs the main `scribe` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("scribe", "scribe is a tool for compiling CloudScribe projects", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a project", true)
	buildCmd.AddPrimaryArg("project-path", "the path to the project to build", true)
	buildCmd.AddStringArg("profile", "p", "the name of the profile to build", false)

	checkCmd := cli.AddSubcommand("check", "check a source file and output errors", true)
	checkCmd.AddPrimaryArg("file-path", "the path to the source file", true)

	emitCmd := cli.AddSubcommand("emit", "compile a source file and print its output", true)
	emitCmd.AddPrimaryArg("file-path", "the path to the source file", true)
	emitCmd.AddFlag("no-optimize", "no", "disable the optimizer")

	initCmd := cli.AddSubcommand("init", "initialize a project in the working directory", true)
	initCmd.AddFlag("no-profiles", "np", "indicates whether scribe should generate default profiles for this project")
	initCmd.AddPrimaryArg("project-name", "the name of the new project", true)

	cli.AddSubcommand("repl", "compile programs interactively", false)
	cli.AddSubcommand("version", "print the CloudScribe version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		os.Exit(2)
	}

	loglevel := result.Arguments["loglevel"].(string)

	// process the inputed command line
	ok := true
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		ok = execBuildCommand(subResult, loglevel)
	case "check":
		ok = execFileCommand(subResult, loglevel, true)
	case "emit":
		ok = execFileCommand(subResult, loglevel, false)
	case "init":
		ok = execInitCommand(subResult)
	case "repl":
		execReplCommand(loglevel)
	case "version":
		logging.PrintInfoMessage("CloudScribe Version", common.ScribeVersion)
	}

	if !ok {
		os.Exit(1)
	}
}

// execBuildCommand executes the build subcommand and handles all errors
func execBuildCommand(result *olive.ArgParseResult, loglevel string) bool {
	// extract CLI data
	projectRelPath, _ := result.PrimaryArg()

	projectPath, err := filepath.Abs(projectRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return false
	}

	profArgVal, ok := result.Arguments["profile"]
	selectedProfile := ""
	if ok {
		selectedProfile = profArgVal.(string)
	}

	// the logger is initialized first so that warnings raised while loading
	// the project are kept
	logging.Initialize(projectPath, loglevel)

	// attempt to load the project
	proj, prof, err := mods.LoadProject(projectPath, selectedProfile)
	if err != nil {
		logging.PrintErrorMessage("Project Load Error", err)
		return false
	}

	if loglevel == "verbose" {
		logging.PrintInfoMessage("Profile", pretty.Sprint(prof))
	}

	// interrupting the build cancels any files that have not been compiled
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := build.NewCompiler(proj, prof)
	return c.Compile(ctx)
}

// execFileCommand executes the `check` and `emit` subcommands which work on a
// single source file outside of any project
func execFileCommand(result *olive.ArgParseResult, loglevel string, checkOnly bool) bool {
	fileRelPath, _ := result.PrimaryArg()

	filePath, err := filepath.Abs(fileRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return false
	}

	src, err := os.ReadFile(filePath)
	if err != nil {
		logging.PrintErrorMessage("File Error", err)
		return false
	}

	logging.Initialize(filepath.Dir(filePath), loglevel)

	lctx := &logging.LogContext{
		FileID:   common.GenerateIDFromPath(filePath),
		FilePath: filePath,
		Source:   string(src),
	}

	res, err := build.CompileSource(lctx, build.Options{
		Optimize:  !result.HasFlag("no-optimize"),
		CheckOnly: checkOnly,
	})

	if err != nil {
		build.ReportError(lctx, err)
		logging.LogCompilationFinished()
		return false
	}

	if checkOnly {
		logging.LogCompilationFinished()
	} else {
		fmt.Println(res.Output)
	}

	return true
}

// execInitCommand executes the `init` subcommand.  It handles all errors
// related to this command.
func execInitCommand(result *olive.ArgParseResult) bool {
	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return false
	}

	projNameValue, _ := result.PrimaryArg()
	if err := mods.InitProject(projNameValue, workDir, result.HasFlag("no-profiles")); err != nil {
		logging.PrintErrorMessage("Project Init Error", err)
		return false
	}

	return true
}
