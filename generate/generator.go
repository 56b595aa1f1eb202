package generate

import (
	"cloudscribe/ir"
	"fmt"
	"strings"
)

// Generator is responsible for converting an optimized program into output
// source text.  A generator should be used for a single compilation run: the
// names it assigns are only unique within that run.
type Generator struct {
	// names maps each binding to its output name
	names map[ir.Binding]string

	// lines is the output being built
	lines []string
}

// NewGenerator creates a new generator
func NewGenerator() *Generator {
	return &Generator{names: make(map[ir.Binding]string)}
}

// Generate generates the output text of a program, one statement per line
func (g *Generator) Generate(prog *ir.Program) string {
	g.lines = nil
	g.generateStmts(prog.Statements)

	return strings.Join(g.lines, "\n")
}

// emit appends a line of output
func (g *Generator) emit(format string, a ...interface{}) {
	g.lines = append(g.lines, fmt.Sprintf(format, a...))
}

// nameOf returns the output name of a binding.  Bindings are numbered in the
// order they are first encountered so that no two bindings ever share a name.
func (g *Generator) nameOf(b ir.Binding) string {
	if fn, ok := b.(*ir.Function); ok && fn.External != "" {
		return fn.External
	}

	if name, ok := g.names[b]; ok {
		return name
	}

	name := fmt.Sprintf("%s_%d", b.BindingName(), len(g.names))
	g.names[b] = name
	return name
}
