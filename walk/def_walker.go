package walk

import (
	"cloudscribe/ir"
	"cloudscribe/resolve"
	"cloudscribe/syntax"
)

// walkVarDecl walks a `var_decl`.  The initializer is analyzed before the
// variable is declared so it cannot refer to the variable itself.
func (w *Walker) walkVarDecl(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Stmt {
	initializer := w.walkExpr(scope, branch.Content[3])

	nameLeaf := branch.LeafAt(1)
	v := &ir.Variable{
		Name:    nameLeaf.Value,
		Mutable: branch.LeafAt(0).Kind == syntax.LET,
		T:       initializer.Type(),
	}

	w.declare(scope, v, nameLeaf)
	return &ir.VariableDeclaration{Variable: v, Initializer: initializer}
}

// walkFuncDecl walks a `func_decl`.  The function is declared before its
// signature and body are walked so that it can call itself.
func (w *Walker) walkFuncDecl(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Stmt {
	nameLeaf := branch.LeafAt(1)
	fn := &ir.Function{Name: nameLeaf.Value}
	w.declare(scope, fn, nameLeaf)

	// loops do not extend into function bodies and neither do tasks
	fnScope := scope.Child(resolve.InFunction, resolve.InLoop|resolve.InTask)

	var paramTypes []ir.Type
	params := branch.BranchAt(2)
	for _, item := range params.Elements(1, -1) {
		paramBranch := item.(*syntax.ASTBranch)
		paramLeaf := paramBranch.LeafAt(0)
		param := &ir.Parameter{
			Name: paramLeaf.Value,
			T:    w.walkTypeLabel(paramBranch.Content[2]),
		}

		w.declare(fnScope, param, paramLeaf)
		fn.Params = append(fn.Params, param)
		paramTypes = append(paramTypes, param.T)
	}

	var rtType ir.Type = ir.Void
	if branch.Len() == 6 {
		rtType = w.walkTypeLabel(branch.Content[4])
	}

	fn.T = &ir.FunctionType{ParamTypes: paramTypes, ReturnType: rtType}
	fn.Body = w.walkBlock(fnScope, branch.LastBranch())

	return &ir.FunctionDeclaration{Fun: fn}
}

// walkTaskDecl walks a `task_decl`
func (w *Walker) walkTaskDecl(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Stmt {
	nameLeaf := branch.LeafAt(1)
	task := &ir.Task{Name: nameLeaf.Value}
	w.declare(scope, task, nameLeaf)

	taskScope := scope.Child(resolve.InTask, resolve.InLoop|resolve.InFunction)
	task.Body = w.walkBlock(taskScope, branch.BranchAt(2))

	return &ir.TaskDeclaration{Task: task}
}
