package generate

import (
	"cloudscribe/ir"
	"cloudscribe/logging"
	"fmt"
	"strings"
)

func (g *Generator) generateStmts(stmts []ir.Stmt) {
	for _, stmt := range stmts {
		g.generateStmt(stmt)
	}
}

// generateStmt generates a statement as one or more lines
func (g *Generator) generateStmt(stmt ir.Stmt) {
	switch v := stmt.(type) {
	case *ir.VariableDeclaration:
		// the initializer names its bindings before the variable is named
		initializer := g.generateExpr(v.Initializer)
		g.emit("let %s = %s;", g.nameOf(v.Variable), initializer)
	case *ir.Assignment:
		g.emit("%s = %s;", g.generateExpr(v.Target), g.generateExpr(v.Source))
	case *ir.Increment:
		g.emit("%s++;", g.generateExpr(v.Target))
	case *ir.Decrement:
		g.emit("%s--;", g.generateExpr(v.Target))
	case *ir.IfStmt:
		g.emit("if (%s) {", g.generateExpr(v.Test))
		g.generateStmts(v.Consequent)
		g.emit("} else {")
		g.generateStmts(v.Alternate)
		g.emit("}")
	case *ir.ShortIfStmt:
		g.emit("if (%s) {", g.generateExpr(v.Test))
		g.generateStmts(v.Consequent)
		g.emit("}")
	case *ir.WhileStmt:
		g.emit("while (%s) {", g.generateExpr(v.Test))
		g.generateStmts(v.Body)
		g.emit("}")
	case *ir.ForStmt:
		coll := g.generateExpr(v.Collection)
		g.emit("for (const %s of %s) {", g.nameOf(v.Iterator), coll)
		g.generateStmts(v.Body)
		g.emit("}")
	case *ir.BreakStmt:
		g.emit("break;")
	case *ir.ReturnStmt:
		g.emit("return %s;", g.generateExpr(v.Expr))
	case *ir.ShortReturnStmt:
		g.emit("return;")
	case *ir.FunctionDeclaration:
		name := g.nameOf(v.Fun)

		params := make([]string, len(v.Fun.Params))
		for i, param := range v.Fun.Params {
			params[i] = g.nameOf(param)
		}

		g.emit("function %s(%s) {", name, strings.Join(params, ", "))
		g.generateStmts(v.Fun.Body)
		g.emit("}")
	case *ir.TaskDeclaration:
		// tasks run as soon as they are declared
		name := g.nameOf(v.Task)
		g.emit("function %s() {", name)
		g.generateStmts(v.Task.Body)
		g.emit("}")
		g.emit("%s();", name)
	case *ir.ExprStmt:
		g.emit("%s;", g.generateExpr(v.Expr))
	default:
		logging.LogFatal(fmt.Sprintf("generator: unknown statement kind %T", stmt))
	}
}
