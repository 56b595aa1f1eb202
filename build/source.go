package build

import (
	"cloudscribe/generate"
	"cloudscribe/ir"
	"cloudscribe/logging"
	"cloudscribe/optimize"
	"cloudscribe/syntax"
	"cloudscribe/walk"
)

// Options controls which stages `CompileSource` runs
type Options struct {
	// Optimize runs the optimizer before generation
	Optimize bool

	// CheckOnly stops after semantic analysis
	CheckOnly bool
}

// Result holds the products of compiling a single source
type Result struct {
	AST     *syntax.ASTBranch
	Program *ir.Program

	// Output is empty if the source was only checked
	Output string
}

// CompileSource compiles the source held by a log context.  Each call is an
// independent run: it builds its own universe and generator so calls may be
// made concurrently.  The returned error is either a *syntax.SyntaxError or a
// *walk.SemanticError.
func CompileSource(lctx *logging.LogContext, opts Options) (*Result, error) {
	root, err := syntax.Parse(lctx)
	if err != nil {
		return nil, err
	}

	prog, err := walk.NewWalker(NewUniverse()).WalkProgram(root)
	if err != nil {
		return nil, err
	}

	res := &Result{AST: root, Program: prog}
	if opts.CheckOnly {
		return res, nil
	}

	if opts.Optimize {
		res.Program = optimize.Optimize(prog)
	}

	res.Output = generate.NewGenerator().Generate(res.Program)
	return res, nil
}

// ReportError logs an error returned by `CompileSource`.  Compile errors are
// displayed with an excerpt of the source they occurred in.
func ReportError(lctx *logging.LogContext, err error) {
	switch v := err.(type) {
	case *syntax.SyntaxError:
		logging.LogCompileError(lctx, v.Message, v.Kind, v.Position)
	case *walk.SemanticError:
		logging.LogCompileError(lctx, v.Message, v.Kind, v.Position)
	default:
		logging.LogConfigError("File", err.Error())
	}
}
