package walk

import (
	"cloudscribe/ir"
	"cloudscribe/resolve"
	"cloudscribe/syntax"
	"strconv"
)

// walkLeaf walks an identifier or a literal
func (w *Walker) walkLeaf(scope *resolve.Scope, leaf *syntax.ASTLeaf) ir.Expr {
	switch leaf.Kind {
	case syntax.IDENTIFIER:
		return w.lookup(scope, leaf)
	case syntax.INTLIT, syntax.FLOATLIT:
		n, err := strconv.ParseFloat(leaf.Value, 64)
		if err != nil {
			raise(leaf, typeKind, "Invalid number %s", leaf.Value)
		}

		return ir.NumberLit(n)
	case syntax.STRINGLIT:
		return ir.StringLit(leaf.Value)
	case syntax.BOOLLIT:
		return ir.BoolLit(leaf.Value == "true")
	}

	raise(leaf, typeKind, "Unexpected token `%s` in expression", leaf.Value)
	return nil
}

// walkCallExpr walks a `call_expr`.  Arguments are counted but not checked
// against the parameter types.
func (w *Walker) walkCallExpr(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Expr {
	callee := w.walkExpr(scope, branch.Content[0])

	var args []ir.Expr
	for _, item := range branch.Elements(2, -1) {
		args = append(args, w.walkExpr(scope, item))
	}

	var (
		nParams int
		rtType  ir.Type = ir.Void
	)

	switch v := callee.(type) {
	case *ir.Function:
		nParams = len(v.Params)
		if v.T != nil {
			rtType = v.T.ReturnType
		}
	default:
		ft, ok := callee.Type().(*ir.FunctionType)
		if !ok {
			raise(branch.Content[0], typeKind, "Expected a function")
		}

		nParams = len(ft.ParamTypes)
		rtType = ft.ReturnType
	}

	if nParams != len(args) {
		raise(branch, argKind, "Wrong number of arguments: expected %d, got %d", nParams, len(args))
	}

	return &ir.Call{Callee: callee, Args: args, T: rtType}
}

func (w *Walker) walkSubscriptExpr(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Expr {
	arr := w.walkExpr(scope, branch.Content[0])
	at, ok := arr.Type().(*ir.ArrayType)
	if !ok {
		raise(branch.Content[0], typeKind, "Expected an array")
	}

	index := w.walkExpr(scope, branch.Content[2])
	if index.Type() != ir.Int {
		raise(branch.Content[2], typeKind, "Expected an integer")
	}

	return &ir.Subscript{Array: arr, Index: index, T: at.ElemType}
}

// walkArrayLit walks an `array_lit`.  The element type is taken from the first
// element; an empty literal is an array of `any`.
func (w *Walker) walkArrayLit(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Expr {
	lit := &ir.ArrayLiteral{}
	for _, item := range branch.Elements(1, -1) {
		lit.Elements = append(lit.Elements, w.walkExpr(scope, item))
	}

	if len(lit.Elements) == 0 {
		lit.T = &ir.ArrayType{ElemType: ir.Any}
	} else {
		lit.T = &ir.ArrayType{ElemType: lit.Elements[0].Type()}
	}

	return lit
}
