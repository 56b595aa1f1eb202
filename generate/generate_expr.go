package generate

import (
	"cloudscribe/ir"
	"cloudscribe/logging"
	"fmt"
	"math"
	"strings"
)

// generateExpr generates the text of an expression
func (g *Generator) generateExpr(expr ir.Expr) string {
	switch v := expr.(type) {
	case ir.NumberLit:
		if v == 0 && math.Signbit(float64(v)) {
			return "-0"
		}

		return ir.FormatNumber(float64(v))
	case ir.StringLit:
		return string(v)
	case ir.BoolLit:
		if v {
			return "true"
		}

		return "false"
	case ir.Binding:
		return g.nameOf(v)
	case *ir.Binary:
		return fmt.Sprintf("%s %s %s", g.generateOperand(v.Left), v.Op, g.generateOperand(v.Right))
	case *ir.Unary:
		if v.Op == "some" {
			// optionality only exists at compile time
			return g.generateExpr(v.Operand)
		}

		return v.Op + g.generateOperand(v.Operand)
	case *ir.Conditional:
		return fmt.Sprintf(
			"%s ? %s : %s",
			g.generateOperand(v.Test),
			g.generateOperand(v.Consequent),
			g.generateOperand(v.Alternate),
		)
	case *ir.Subscript:
		return fmt.Sprintf("%s[%s]", g.generateOperand(v.Array), g.generateExpr(v.Index))
	case *ir.Member:
		// `3.x` would be read as a malformed number
		if _, ok := v.Object.(ir.NumberLit); ok {
			return "(" + g.generateExpr(v.Object) + ")." + v.Field
		}

		return g.generateOperand(v.Object) + "." + v.Field
	case *ir.ArrayLiteral:
		return "[" + g.generateList(v.Elements) + "]"
	case *ir.Call:
		return fmt.Sprintf("%s(%s)", g.generateOperand(v.Callee), g.generateList(v.Args))
	}

	logging.LogFatal(fmt.Sprintf("generator: unknown expression kind %T", expr))
	return ""
}

// generateOperand generates an expression appearing as the operand of another
// expression.  Operator applications are parenthesized so that the grouping
// of the source is preserved.
func (g *Generator) generateOperand(expr ir.Expr) string {
	switch v := expr.(type) {
	case *ir.Binary, *ir.Conditional:
		return "(" + g.generateExpr(v) + ")"
	case *ir.Unary:
		if v.Op != "some" {
			return "(" + g.generateExpr(v) + ")"
		}

		return g.generateOperand(v.Operand)
	case ir.NumberLit:
		// folding can produce negative literals: `-2 ** 2` is not valid output
		if math.Signbit(float64(v)) {
			return "(" + g.generateExpr(v) + ")"
		}
	}

	return g.generateExpr(expr)
}

func (g *Generator) generateList(exprs []ir.Expr) string {
	items := make([]string, len(exprs))
	for i, expr := range exprs {
		items[i] = g.generateExpr(expr)
	}

	return strings.Join(items, ", ")
}
