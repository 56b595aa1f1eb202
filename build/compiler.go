package build

import (
	"cloudscribe/deps"
	"cloudscribe/logging"
	"cloudscribe/mods"
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of a project build
type Compiler struct {
	// project is the project being built
	project *mods.ScribeProject

	// profile is the profile that is being used to build the project
	profile *mods.BuildProfile

	// packages holds one package per source directory of the project
	packages []*deps.ScribePackage
}

// NewCompiler creates a new compiler for a given project and build profile
func NewCompiler(project *mods.ScribeProject, profile *mods.BuildProfile) *Compiler {
	return &Compiler{
		project: project,
		profile: profile,
	}
}

// Compile runs the full compilation algorithm on the project and build profile.
// It handles all compilation errors appropriately and returns a boolean
// indicating whether or not every file was compiled and written.
func (c *Compiler) Compile(ctx context.Context) bool {
	logging.LogCompileHeader(c.project.Name, c.profile.Name)
	defer logging.LogCompilationFinished()

	logging.LogBeginPhase("Loading")
	for _, dir := range c.project.SourceDirs {
		pkg, ok := c.initPackage(dir)
		if !ok {
			return false
		}

		c.packages = append(c.packages, pkg)
	}
	logging.LogEndPhase()

	logging.LogBeginPhase("Compiling")
	if !c.compileAll(ctx) {
		return false
	}
	logging.LogEndPhase()

	logging.LogBeginPhase("Writing")
	if err := c.writeOutputs(); err != nil {
		logging.LogConfigError("Output", err.Error())
		return false
	}
	logging.LogEndPhase()

	return true
}

// compileAll compiles every loaded file concurrently.  Files are independent
// programs so a compile error in one file does not stop the others; only
// cancellation does.
func (c *Compiler) compileAll(ctx context.Context) bool {
	g, gctx := errgroup.WithContext(ctx)

	for _, pkg := range c.packages {
		for _, file := range pkg.Files {
			file := file
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				c.compileFile(file)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		logging.LogConfigError("Build", "compilation interrupted: "+err.Error())
		return false
	}

	return logging.ShouldProceed()
}

// compileFile compiles a single file logging any error it contains
func (c *Compiler) compileFile(file *deps.ScribeFile) {
	res, err := CompileSource(file.LogContext, Options{Optimize: c.profile.Optimize})
	if err != nil {
		ReportError(file.LogContext, err)
		return
	}

	file.AST = res.AST
	file.Program = res.Program
	file.Output = res.Output
}

// writeOutputs writes the generated text of every file into the output
// directory of the profile
func (c *Compiler) writeOutputs() error {
	if err := os.MkdirAll(c.profile.OutputPath, 0755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", c.profile.OutputPath)
	}

	// files from different source directories may share a name
	written := make(map[string]string)

	for _, pkg := range c.packages {
		for _, file := range pkg.Files {
			outName := file.OutputName()
			if prev, ok := written[outName]; ok {
				return errors.Errorf("both %s and %s would be written to %s", prev, file.FilePath, outName)
			}

			written[outName] = file.FilePath

			outPath := filepath.Join(c.profile.OutputPath, outName)
			if err := os.WriteFile(outPath, []byte(file.Output+"\n"), 0644); err != nil {
				return errors.Wrapf(err, "failed to write %s", outPath)
			}
		}
	}

	return nil
}

// Files returns every file loaded by the compiler in load order
func (c *Compiler) Files() []*deps.ScribeFile {
	var files []*deps.ScribeFile
	for _, pkg := range c.packages {
		files = append(files, pkg.Files...)
	}

	return files
}
