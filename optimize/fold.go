package optimize

import (
	"cloudscribe/ir"
	"math"
	"strings"
)

// truthy reports whether a literal counts as true when used as a condition
func truthy(lit ir.Expr) bool {
	switch v := lit.(type) {
	case ir.NumberLit:
		return v != 0 && !math.IsNaN(float64(v))
	case ir.StringLit:
		return v.Inner() != ""
	case ir.BoolLit:
		return bool(v)
	}

	return false
}

// foldBinary computes a binary operation over two literals.  It returns false
// if either operand is not a literal or if the result cannot be represented as
// a literal.
func foldBinary(op string, lhs, rhs ir.Expr) (ir.Expr, bool) {
	if !ir.IsLiteral(lhs) || !ir.IsLiteral(rhs) {
		return nil, false
	}

	switch op {
	case "&&":
		if truthy(lhs) {
			return rhs, true
		}

		return lhs, true
	case "||":
		if truthy(lhs) {
			return lhs, true
		}

		return rhs, true
	case "??":
		// literals are never absent
		return lhs, true
	case "==", "!=":
		eq, ok := strictEquals(lhs, rhs)
		if !ok {
			return nil, false
		}

		return ir.BoolLit(eq == (op == "==")), true
	case "+":
		_, lstr := lhs.(ir.StringLit)
		_, rstr := rhs.(ir.StringLit)
		if lstr || rstr {
			return ir.StringLit("\"" + stringText(lhs) + stringText(rhs) + "\""), true
		}
	case "<", "<=", ">", ">=":
		return foldComparison(op, lhs, rhs)
	}

	ln, lok := lhs.(ir.NumberLit)
	rn, rok := rhs.(ir.NumberLit)
	if !lok || !rok {
		return nil, false
	}

	return foldArithmetic(op, float64(ln), float64(rn))
}

// foldArithmetic computes a numeric operation.  Results that are not finite
// are left for the output program to compute.
func foldArithmetic(op string, l, r float64) (ir.Expr, bool) {
	var result float64
	switch op {
	case "+":
		result = l + r
	case "-":
		result = l - r
	case "*":
		result = l * r
	case "/":
		result = l / r
	case "%":
		result = math.Mod(l, r)
	case "**":
		result = math.Pow(l, r)
	default:
		// bitwise operators
		return nil, false
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return nil, false
	}

	return ir.NumberLit(result), true
}

// foldComparison computes an ordering comparison between two numbers or two
// strings
func foldComparison(op string, lhs, rhs ir.Expr) (ir.Expr, bool) {
	var cmp int
	switch l := lhs.(type) {
	case ir.NumberLit:
		r, ok := rhs.(ir.NumberLit)
		if !ok || math.IsNaN(float64(l)) || math.IsNaN(float64(r)) {
			return nil, false
		}

		switch {
		case l < r:
			cmp = -1
		case l > r:
			cmp = 1
		}
	case ir.StringLit:
		r, ok := rhs.(ir.StringLit)
		if !ok || !isPlainText(l.Inner()) || !isPlainText(r.Inner()) {
			return nil, false
		}

		cmp = strings.Compare(l.Inner(), r.Inner())
	default:
		return nil, false
	}

	switch op {
	case "<":
		return ir.BoolLit(cmp < 0), true
	case "<=":
		return ir.BoolLit(cmp <= 0), true
	case ">":
		return ir.BoolLit(cmp > 0), true
	default:
		return ir.BoolLit(cmp >= 0), true
	}
}

// strictEquals compares two literals without conversion.  Literals of
// different kinds are never equal.  It returns false in its second result if
// the comparison cannot be decided from the source text.
func strictEquals(lhs, rhs ir.Expr) (bool, bool) {
	switch l := lhs.(type) {
	case ir.NumberLit:
		r, ok := rhs.(ir.NumberLit)
		return ok && l == r, true
	case ir.StringLit:
		r, ok := rhs.(ir.StringLit)
		if !ok {
			return false, true
		}

		if !isPlainText(l.Inner()) || !isPlainText(r.Inner()) {
			return false, false
		}

		return l.Inner() == r.Inner(), true
	case ir.BoolLit:
		r, ok := rhs.(ir.BoolLit)
		return ok && l == r, true
	}

	return false, false
}

// stringText renders a literal as it appears inside a string
func stringText(lit ir.Expr) string {
	switch v := lit.(type) {
	case ir.NumberLit:
		return ir.FormatNumber(float64(v))
	case ir.StringLit:
		return v.Inner()
	case ir.BoolLit:
		if v {
			return "true"
		}

		return "false"
	}

	return ""
}

// isPlainText reports whether the text of a string literal is its value: it
// holds no escapes and only ASCII so it orders the same byte-wise as it does
// in the output language
func isPlainText(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] >= 0x80 {
			return false
		}
	}

	return true
}

// foldUnary computes a prefix operation over a literal
func foldUnary(op string, operand ir.Expr) (ir.Expr, bool) {
	if !ir.IsLiteral(operand) {
		return nil, false
	}

	switch op {
	case "-":
		if n, ok := operand.(ir.NumberLit); ok {
			return -n, true
		}
	case "!":
		return ir.BoolLit(!truthy(operand)), true
	case "some":
		return operand, true
	}

	return nil, false
}
