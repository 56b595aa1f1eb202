package walk

import (
	"cloudscribe/ir"
	"cloudscribe/logging"
	"cloudscribe/resolve"
	"cloudscribe/syntax"
)

// walkStmts walks a list of statement branches in the given scope
func (w *Walker) walkStmts(scope *resolve.Scope, nodes []syntax.ASTNode) []ir.Stmt {
	stmts := make([]ir.Stmt, 0, len(nodes))
	for _, node := range nodes {
		stmts = append(stmts, w.walkStmt(scope, node.(*syntax.ASTBranch)))
	}

	return stmts
}

// walkBlock walks the statements of a `block` directly in `scope`.  Callers
// create the child scope the block should open.
func (w *Walker) walkBlock(scope *resolve.Scope, block *syntax.ASTBranch) []ir.Stmt {
	// skip the braces
	return w.walkStmts(scope, block.Content[1:block.Len()-1])
}

// walkStmt walks any statement branch
func (w *Walker) walkStmt(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Stmt {
	switch branch.Name {
	case "var_decl":
		return w.walkVarDecl(scope, branch)
	case "func_decl":
		return w.walkFuncDecl(scope, branch)
	case "task_decl":
		return w.walkTaskDecl(scope, branch)
	case "if_stmt":
		return w.walkIfStmt(scope, branch)
	case "while_loop":
		return w.walkWhileLoop(scope, branch)
	case "for_loop":
		return w.walkForLoop(scope, branch)
	case "break_stmt":
		if !scope.Has(resolve.InLoop) {
			raise(branch.LeafAt(0), usageKind, "Break can only appear in a loop")
		}

		return &ir.BreakStmt{}
	case "return_stmt":
		return w.walkReturnStmt(scope, branch)
	case "incdec_stmt":
		return w.walkIncDecStmt(scope, branch)
	case "assign_stmt":
		return w.walkAssignStmt(scope, branch)
	case "expr_stmt":
		return &ir.ExprStmt{Expr: w.walkExpr(scope, branch.Content[0])}
	}

	logging.LogFatal("unknown statement kind: " + branch.Name)
	return nil
}

// -----------------------------------------------------------------------------

// walkIfStmt walks an `if_stmt`.  Each block opens its own scope.
func (w *Walker) walkIfStmt(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Stmt {
	test := w.walkCondition(scope, branch.Content[1])
	cons := w.walkBlock(scope.Child(0, 0), branch.BranchAt(2))

	if branch.Len() == 3 {
		return &ir.ShortIfStmt{Test: test, Consequent: cons}
	}

	return &ir.IfStmt{
		Test:       test,
		Consequent: cons,
		Alternate:  w.walkBlock(scope.Child(0, 0), branch.BranchAt(4)),
	}
}

func (w *Walker) walkWhileLoop(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Stmt {
	test := w.walkCondition(scope, branch.Content[1])

	return &ir.WhileStmt{
		Test: test,
		Body: w.walkBlock(scope.Child(resolve.InLoop, 0), branch.BranchAt(2)),
	}
}

// walkForLoop walks a `for_loop`.  The collection is resolved in the enclosing
// scope; the iterator is an immutable variable local to the loop body.
func (w *Walker) walkForLoop(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Stmt {
	nameLeaf := branch.LeafAt(1)

	coll := w.walkExpr(scope, branch.Content[3])
	at, ok := coll.Type().(*ir.ArrayType)
	if !ok {
		raise(branch.Content[3], typeKind, "Expected an array")
	}

	iter := &ir.Variable{Name: nameLeaf.Value, T: at.ElemType}

	loopScope := scope.Child(resolve.InLoop, 0)
	w.declare(loopScope, iter, nameLeaf)

	return &ir.ForStmt{
		Iterator:   iter,
		Collection: coll,
		Body:       w.walkBlock(loopScope, branch.BranchAt(4)),
	}
}

func (w *Walker) walkReturnStmt(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Stmt {
	if !scope.Has(resolve.InFunction | resolve.InTask) {
		raise(branch.LeafAt(0), usageKind, "Return can only appear in a function or task")
	}

	// `return ;`
	if branch.Len() == 2 {
		return &ir.ShortReturnStmt{}
	}

	return &ir.ReturnStmt{Expr: w.walkExpr(scope, branch.Content[1])}
}

// walkIncDecStmt walks an `incdec_stmt`.  The target need not be mutable but
// it must hold an integer.
func (w *Walker) walkIncDecStmt(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Stmt {
	target := w.walkExpr(scope, branch.Content[0])
	if target.Type() != ir.Int {
		raise(branch.Content[0], typeKind, "Expected an integer")
	}

	if branch.LeafAt(1).Kind == syntax.INCREM {
		return &ir.Increment{Target: target}
	}

	return &ir.Decrement{Target: target}
}

func (w *Walker) walkAssignStmt(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Stmt {
	target := w.walkExpr(scope, branch.Content[0])

	switch v := target.(type) {
	case *ir.Variable:
		if !v.Mutable {
			raise(branch.Content[0], immutKind, "Cannot assign to immutable variable")
		}
	case *ir.Function:
		raise(branch.Content[0], immutKind, "Cannot assign to function %s", v.Name)
	case *ir.Task:
		raise(branch.Content[0], immutKind, "Cannot assign to task %s", v.Name)
	}

	return &ir.Assignment{
		Target: target,
		Source: w.walkExpr(scope, branch.Content[2]),
	}
}

// walkCondition walks an expression that must be a boolean
func (w *Walker) walkCondition(scope *resolve.Scope, node syntax.ASTNode) ir.Expr {
	expr := w.walkExpr(scope, node)
	if expr.Type() != ir.Boolean {
		raise(node, typeKind, "Expected a boolean")
	}

	return expr
}
