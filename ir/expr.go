package ir

// Binary is a binary operator application.  `Op` is the operator exactly as
// written in source (`+`, `&&`, `??`, ...).
type Binary struct {
	exprNode

	Op          string
	Left, Right Expr
	T           Type
}

func (b *Binary) Type() Type { return b.T }

// Unary is a prefix operator application (`!`, `-` or `some`)
type Unary struct {
	exprNode

	Op      string
	Operand Expr
	T       Type
}

func (u *Unary) Type() Type { return u.T }

// Conditional is `test ? consequent : alternate`
type Conditional struct {
	exprNode

	Test, Consequent, Alternate Expr
	T                           Type
}

func (c *Conditional) Type() Type { return c.T }

// Subscript is `array[index]`
type Subscript struct {
	exprNode

	Array, Index Expr
	T            Type
}

func (s *Subscript) Type() Type { return s.T }

// Member is `object.field`
type Member struct {
	exprNode

	Object Expr
	Field  string
	T      Type
}

func (m *Member) Type() Type { return m.T }

type ArrayLiteral struct {
	exprNode

	Elements []Expr
	T        Type
}

func (al *ArrayLiteral) Type() Type { return al.T }

// Call is a function call.  `T` is the return type of the callee.
type Call struct {
	exprNode

	Callee Expr
	Args   []Expr
	T      Type
}

func (c *Call) Type() Type { return c.T }
