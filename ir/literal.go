package ir

import (
	"math"
	"strconv"
	"strings"
)

// NumberLit is a numeric constant.  CloudScribe has a single numeric type so
// both integer and float literals are typed `int`.
type NumberLit float64

func (NumberLit) isNode() {}
func (NumberLit) isExpr() {}
func (NumberLit) Type() Type { return Int }

// StringLit is a string constant holding its source text, quotes included
type StringLit string

func (StringLit) isNode() {}
func (StringLit) isExpr() {}
func (StringLit) Type() Type { return String }

// Inner returns the text between the quotes of the literal
func (sl StringLit) Inner() string {
	s := string(sl)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}

type BoolLit bool

func (BoolLit) isNode() {}
func (BoolLit) isExpr() {}
func (BoolLit) Type() Type { return Boolean }

// IsLiteral reports whether an expression is a constant value
func IsLiteral(e Expr) bool {
	switch e.(type) {
	case NumberLit, StringLit, BoolLit:
		return true
	}

	return false
}

// FormatNumber renders a number the way the output language prints it:
// integral values have no fraction, very large and very small magnitudes use
// an exponent with an explicit sign.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers negative zero as well
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)

		// strconv pads the exponent to two digits
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
