// Package optimize rewrites analyzed programs into simpler, equivalent ones.
// The rewrite never mutates its input: every changed node is rebuilt.
package optimize

import (
	"cloudscribe/ir"
	"cloudscribe/logging"
	"fmt"
)

// optimizer holds the state of a single optimization run
type optimizer struct {
	// copies maps the analyzer's function and task bindings to the fresh
	// bindings carrying their optimized bodies so that references are
	// rewritten along with the declarations
	copies map[ir.Binding]ir.Binding
}

// Optimize folds constant expressions and removes statically dead loops and
// conditionals.  It always succeeds.
func Optimize(prog *ir.Program) *ir.Program {
	o := &optimizer{copies: make(map[ir.Binding]ir.Binding)}
	return &ir.Program{Statements: o.optimizeStmts(prog.Statements)}
}

// optimizeStmts optimizes a statement list dropping any statement that was
// removed entirely
func (o *optimizer) optimizeStmts(stmts []ir.Stmt) []ir.Stmt {
	result := make([]ir.Stmt, 0, len(stmts))
	for _, stmt := range stmts {
		if ostmt := o.optimizeStmt(stmt); ostmt != nil {
			result = append(result, ostmt)
		}
	}

	return result
}

// optimizeStmt optimizes a single statement.  It returns nil if the statement
// can never have an effect.
func (o *optimizer) optimizeStmt(stmt ir.Stmt) ir.Stmt {
	switch v := stmt.(type) {
	case *ir.VariableDeclaration:
		return &ir.VariableDeclaration{Variable: v.Variable, Initializer: o.optimizeExpr(v.Initializer)}
	case *ir.Assignment:
		return &ir.Assignment{Target: o.optimizeExpr(v.Target), Source: o.optimizeExpr(v.Source)}
	case *ir.Increment:
		return &ir.Increment{Target: o.optimizeExpr(v.Target)}
	case *ir.Decrement:
		return &ir.Decrement{Target: o.optimizeExpr(v.Target)}
	case *ir.IfStmt:
		return &ir.IfStmt{
			Test:       o.optimizeExpr(v.Test),
			Consequent: o.optimizeStmts(v.Consequent),
			Alternate:  o.optimizeStmts(v.Alternate),
		}
	case *ir.ShortIfStmt:
		test := o.optimizeExpr(v.Test)
		if isFalse(test) {
			return nil
		}

		return &ir.ShortIfStmt{Test: test, Consequent: o.optimizeStmts(v.Consequent)}
	case *ir.WhileStmt:
		test := o.optimizeExpr(v.Test)
		if isFalse(test) {
			return nil
		}

		return &ir.WhileStmt{Test: test, Body: o.optimizeStmts(v.Body)}
	case *ir.ForStmt:
		return &ir.ForStmt{
			Iterator:   v.Iterator,
			Collection: o.optimizeExpr(v.Collection),
			Body:       o.optimizeStmts(v.Body),
		}
	case *ir.ReturnStmt:
		return &ir.ReturnStmt{Expr: o.optimizeExpr(v.Expr)}
	case *ir.BreakStmt, *ir.ShortReturnStmt:
		return v
	case *ir.FunctionDeclaration:
		fn := &ir.Function{
			Name:     v.Fun.Name,
			Params:   v.Fun.Params,
			T:        v.Fun.T,
			External: v.Fun.External,
		}

		// registered before the body so recursive calls see the copy
		o.copies[v.Fun] = fn
		fn.Body = o.optimizeStmts(v.Fun.Body)

		return &ir.FunctionDeclaration{Fun: fn}
	case *ir.TaskDeclaration:
		task := &ir.Task{Name: v.Task.Name}
		o.copies[v.Task] = task
		task.Body = o.optimizeStmts(v.Task.Body)

		return &ir.TaskDeclaration{Task: task}
	case *ir.ExprStmt:
		return &ir.ExprStmt{Expr: o.optimizeExpr(v.Expr)}
	}

	logging.LogFatal(fmt.Sprintf("optimizer: unknown statement kind %T", stmt))
	return nil
}

// optimizeExpr optimizes an expression.  Expressions are never removed: if
// nothing can be folded the expression is rebuilt from its optimized parts.
func (o *optimizer) optimizeExpr(expr ir.Expr) ir.Expr {
	switch v := expr.(type) {
	case ir.NumberLit, ir.StringLit, ir.BoolLit, *ir.Variable, *ir.Parameter:
		return v
	case *ir.Function, *ir.Task:
		if cp, ok := o.copies[v.(ir.Binding)]; ok {
			return cp
		}

		return v
	case *ir.Binary:
		lhs, rhs := o.optimizeExpr(v.Left), o.optimizeExpr(v.Right)
		if folded, ok := foldBinary(v.Op, lhs, rhs); ok {
			return folded
		}

		return &ir.Binary{Op: v.Op, Left: lhs, Right: rhs, T: v.T}
	case *ir.Unary:
		operand := o.optimizeExpr(v.Operand)
		if folded, ok := foldUnary(v.Op, operand); ok {
			return folded
		}

		return &ir.Unary{Op: v.Op, Operand: operand, T: v.T}
	case *ir.Conditional:
		test := o.optimizeExpr(v.Test)
		if ir.IsLiteral(test) {
			if truthy(test) {
				return o.optimizeExpr(v.Consequent)
			}

			return o.optimizeExpr(v.Alternate)
		}

		return &ir.Conditional{
			Test:       test,
			Consequent: o.optimizeExpr(v.Consequent),
			Alternate:  o.optimizeExpr(v.Alternate),
			T:          v.T,
		}
	case *ir.Subscript:
		return &ir.Subscript{Array: o.optimizeExpr(v.Array), Index: o.optimizeExpr(v.Index), T: v.T}
	case *ir.Member:
		return &ir.Member{Object: o.optimizeExpr(v.Object), Field: v.Field, T: v.T}
	case *ir.ArrayLiteral:
		elems := make([]ir.Expr, len(v.Elements))
		for i, elem := range v.Elements {
			elems[i] = o.optimizeExpr(elem)
		}

		return &ir.ArrayLiteral{Elements: elems, T: v.T}
	case *ir.Call:
		args := make([]ir.Expr, len(v.Args))
		for i, arg := range v.Args {
			args[i] = o.optimizeExpr(arg)
		}

		return &ir.Call{Callee: o.optimizeExpr(v.Callee), Args: args, T: v.T}
	}

	logging.LogFatal(fmt.Sprintf("optimizer: unknown expression kind %T", expr))
	return nil
}

// isFalse reports whether a test is a constant that never holds
func isFalse(test ir.Expr) bool {
	return ir.IsLiteral(test) && !truthy(test)
}
