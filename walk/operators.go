package walk

import (
	"cloudscribe/ir"
	"cloudscribe/syntax"
)

// checkBinaryOp checks the operand types of a binary operator application and
// returns its result type
func checkBinaryOp(branch *syntax.ASTBranch, op string, lhs, rhs ir.Expr) ir.Type {
	lt, rt := lhs.Type(), rhs.Type()

	switch op {
	case "&&", "||":
		if lt != ir.Boolean {
			raise(branch.Content[0], typeKind, "Expected a boolean")
		}

		if rt != ir.Boolean {
			raise(branch.Content[2], typeKind, "Expected a boolean")
		}

		return ir.Boolean
	case "+":
		// strings absorb whatever they are concatenated with
		if lt == ir.String || rt == ir.String {
			return ir.String
		}

		if lt == ir.Int && rt == ir.Int {
			return ir.Int
		}

		raise(branch, typeKind, "Expected compatible types for '+' operation, got %s and %s", lt.Repr(), rt.Repr())
	case "-", "*", "/", "%", "**":
		if lt != ir.Int || rt != ir.Int {
			raise(branch, typeKind, "Expected int for '%s' operation", op)
		}

		return ir.Int
	case "<", "<=", ">", ">=", "==", "!=":
		return ir.Boolean
	case "??":
		return rt
	}

	// bitwise operators are unchecked and take the type of their left operand
	return lt
}

// checkUnaryOp checks the operand type of a prefix operator application and
// returns its result type
func checkUnaryOp(branch *syntax.ASTBranch, op string, operand ir.Expr) ir.Type {
	switch op {
	case "!":
		if operand.Type() != ir.Boolean {
			raise(branch, typeKind, "Expected a boolean for '!' operation")
		}

		return ir.Boolean
	case "-":
		if operand.Type() != ir.Int {
			raise(branch, typeKind, "Expected an integer for '-' operation")
		}

		return ir.Int
	}

	// some
	return &ir.OptionalType{BaseType: operand.Type()}
}
