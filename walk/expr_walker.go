package walk

import (
	"cloudscribe/ir"
	"cloudscribe/logging"
	"cloudscribe/resolve"
	"cloudscribe/syntax"
)

// walkExpr walks any expression node and returns its typed IR
func (w *Walker) walkExpr(scope *resolve.Scope, node syntax.ASTNode) ir.Expr {
	switch v := node.(type) {
	case *syntax.ASTLeaf:
		return w.walkLeaf(scope, v)
	case *syntax.ASTBranch:
		switch v.Name {
		case "cond_expr":
			return w.walkCondExpr(scope, v)
		case "unwrap_expr", "or_expr", "and_expr", "bor_expr", "bxor_expr",
			"band_expr", "comp_expr", "add_expr", "mul_expr", "pow_expr":
			return w.walkBinaryExpr(scope, v)
		case "unary_expr":
			return w.walkUnaryExpr(scope, v)
		case "call_expr":
			return w.walkCallExpr(scope, v)
		case "subscript_expr":
			return w.walkSubscriptExpr(scope, v)
		case "member_expr":
			obj := w.walkExpr(scope, v.Content[0])
			return &ir.Member{Object: obj, Field: v.LeafAt(2).Value, T: obj.Type()}
		case "array_lit":
			return w.walkArrayLit(scope, v)
		case "paren_expr":
			return w.walkExpr(scope, v.Content[1])
		}

		logging.LogFatal("unknown expression kind: " + v.Name)
	}

	return nil
}

// walkCondExpr walks a `cond_expr`.  The expression takes the type of its
// consequent; the alternate is not checked against it.
func (w *Walker) walkCondExpr(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Expr {
	test := w.walkCondition(scope, branch.Content[0])
	cons := w.walkExpr(scope, branch.Content[2])
	alt := w.walkExpr(scope, branch.Content[4])

	return &ir.Conditional{
		Test:       test,
		Consequent: cons,
		Alternate:  alt,
		T:          cons.Type(),
	}
}

// walkBinaryExpr walks any branch of the form `lhs op rhs`
func (w *Walker) walkBinaryExpr(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Expr {
	lhs := w.walkExpr(scope, branch.Content[0])
	op := branch.LeafAt(1).Value
	rhs := w.walkExpr(scope, branch.Content[2])

	return &ir.Binary{
		Op:    op,
		Left:  lhs,
		Right: rhs,
		T:     checkBinaryOp(branch, op, lhs, rhs),
	}
}

// walkUnaryExpr walks a `unary_expr`: `!`, `-` or `some`
func (w *Walker) walkUnaryExpr(scope *resolve.Scope, branch *syntax.ASTBranch) ir.Expr {
	op := branch.LeafAt(0).Value
	operand := w.walkExpr(scope, branch.Content[1])

	return &ir.Unary{
		Op:      op,
		Operand: operand,
		T:       checkUnaryOp(branch, op, operand),
	}
}
