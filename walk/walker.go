package walk

import (
	"cloudscribe/ir"
	"cloudscribe/resolve"
	"cloudscribe/syntax"
)

// Walker is the construct responsible for performing semantic analysis on a
// file's CST and lowering it to IR.  A walker holds no state between runs so
// walking the same tree twice yields structurally identical programs.
type Walker struct {
	// universe is the root scope holding the intrinsics.  It is only read.
	universe *resolve.Scope
}

// NewWalker creates a new walker resolving names against the given universe
func NewWalker(universe *resolve.Scope) *Walker {
	return &Walker{universe: universe}
}

// WalkProgram analyzes a `program` branch.  Analysis stops at the first
// semantic error which is returned as a *SemanticError.
func (w *Walker) WalkProgram(root *syntax.ASTBranch) (prog *ir.Program, err error) {
	defer catchErrors(&err)

	// the global scope is created fresh for every run so that declarations
	// never leak between runs
	global := w.universe.Child(0, 0)

	prog = &ir.Program{Statements: w.walkStmts(global, root.Content)}
	return prog, nil
}

// declare binds `b` in `scope` raising an error if the name is already bound
// in that scope
func (w *Walker) declare(scope *resolve.Scope, b ir.Binding, at syntax.ASTNode) {
	if err := scope.Declare(b.BindingName(), b); err != nil {
		if _, ok := err.(*resolve.DuplicateDeclarationError); ok {
			raise(at, defKind, "%s", err)
		}

		raise(at, defKind, "Identifier %s cannot be declared here", b.BindingName())
	}
}

// lookup resolves a name raising an error if it is not visible
func (w *Walker) lookup(scope *resolve.Scope, leaf *syntax.ASTLeaf) ir.Binding {
	if b, ok := scope.Lookup(leaf.Value); ok {
		return b
	}

	raise(leaf, nameKind, "Identifier %s not declared", leaf.Value)
	return nil
}
