package ir

// Node is any node of the IR.  The node kinds are closed: every kind is
// defined in this package and every pass dispatches over them with a type
// switch.
type Node interface {
	isNode()
}

// Stmt is a node that can appear in a statement list
type Stmt interface {
	Node
	isStmt()
}

// Expr is a node that produces a value.  Every expression knows its type once
// the analyzer has built it.
type Expr interface {
	Node
	Type() Type
	isExpr()
}

// stmtNode and exprNode close the `Stmt` and `Expr` unions
type stmtNode struct{}

func (stmtNode) isNode() {}
func (stmtNode) isStmt() {}

type exprNode struct{}

func (exprNode) isNode() {}
func (exprNode) isExpr() {}
