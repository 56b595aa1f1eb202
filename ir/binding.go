package ir

// Binding is a named entity registered in a scope.  Bindings are also
// expressions: a reference to a name in the IR is the binding itself.
type Binding interface {
	Expr

	// BindingName is the name the binding was declared with
	BindingName() string

	isBinding()
}

// Variable is a binding introduced by `let`, `const` or a for loop
type Variable struct {
	exprNode

	Name    string
	Mutable bool
	T       Type
}

func (v *Variable) Type() Type { return v.T }
func (v *Variable) BindingName() string { return v.Name }
func (*Variable) isBinding() {}

// Parameter is a function parameter.  Parameters can be assigned to.
type Parameter struct {
	exprNode

	Name string
	T    Type
}

func (p *Parameter) Type() Type { return p.T }
func (p *Parameter) BindingName() string { return p.Name }
func (*Parameter) isBinding() {}

// Function is a named function.  It is registered before its signature and
// body are known so that it can refer to itself: `Params` and `T` are filled
// in once the signature is analyzed and `Body` once the body is.
type Function struct {
	exprNode

	Name   string
	Params []*Parameter
	Body   []Stmt
	T      *FunctionType

	// External is the name an intrinsic is lowered to; it is empty for
	// functions declared in source
	External string
}

// Type returns `any` while the signature of the function is still unknown
func (f *Function) Type() Type {
	if f.T == nil {
		return Any
	}

	return f.T
}

func (f *Function) BindingName() string { return f.Name }
func (*Function) isBinding() {}

// Task is a named, parameter-less block of statements that is run as soon as
// it is declared.  It produces no value.
type Task struct {
	exprNode

	Name string
	Body []Stmt
}

func (*Task) Type() Type { return Void }
func (t *Task) BindingName() string { return t.Name }
func (*Task) isBinding() {}
