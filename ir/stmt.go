package ir

// Program is the root of the IR: a file's top level statements
type Program struct {
	Statements []Stmt
}

func (*Program) isNode() {}

// VariableDeclaration introduces `Variable` initialized to `Initializer`
type VariableDeclaration struct {
	stmtNode

	Variable    *Variable
	Initializer Expr
}

// Assignment stores `Source` into `Target`.  The target is a variable, a
// parameter, a subscript or a member access.
type Assignment struct {
	stmtNode

	Target Expr
	Source Expr
}

// Increment is `target++`
type Increment struct {
	stmtNode

	Target Expr
}

// Decrement is `target--`
type Decrement struct {
	stmtNode

	Target Expr
}

// IfStmt is an if statement with an else block
type IfStmt struct {
	stmtNode

	Test       Expr
	Consequent []Stmt
	Alternate  []Stmt
}

// ShortIfStmt is an if statement without an else block
type ShortIfStmt struct {
	stmtNode

	Test       Expr
	Consequent []Stmt
}

type WhileStmt struct {
	stmtNode

	Test Expr
	Body []Stmt
}

// ForStmt iterates `Iterator` over the elements of `Collection`
type ForStmt struct {
	stmtNode

	Iterator   *Variable
	Collection Expr
	Body       []Stmt
}

type BreakStmt struct {
	stmtNode
}

// ReturnStmt returns a value; ShortReturnStmt returns nothing
type ReturnStmt struct {
	stmtNode

	Expr Expr
}

type ShortReturnStmt struct {
	stmtNode
}

type FunctionDeclaration struct {
	stmtNode

	Fun *Function
}

type TaskDeclaration struct {
	stmtNode

	Task *Task
}

// ExprStmt is an expression evaluated for its effects, usually a call
type ExprStmt struct {
	stmtNode

	Expr Expr
}
