package resolve

import (
	"cloudscribe/ir"
	"errors"
	"testing"
)

func newPrint() *ir.Function {
	return &ir.Function{
		Name:     "print",
		Params:   []*ir.Parameter{{Name: "value", T: ir.Any}},
		T:        &ir.FunctionType{ParamTypes: []ir.Type{ir.Any}, ReturnType: ir.Void},
		External: "console.log",
	}
}

func TestDeclareAndLookup(t *testing.T) {
	global := NewUniverse(newPrint()).Child(0, 0)

	x := &ir.Variable{Name: "x", Mutable: true, T: ir.Int}
	if err := global.Declare("x", x); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if b, ok := global.Lookup("x"); !ok || b != x {
		t.Error("lookup should find the declared variable")
	}

	if b, ok := global.Lookup("print"); !ok || b.BindingName() != "print" {
		t.Error("lookup should reach the universe")
	}

	if _, ok := global.Lookup("y"); ok {
		t.Error("lookup of an undeclared name should fail")
	}
}

func TestDuplicateDeclaration(t *testing.T) {
	global := NewUniverse().Child(0, 0)
	global.Declare("x", &ir.Variable{Name: "x", T: ir.Int})

	err := global.Declare("x", &ir.Variable{Name: "x", T: ir.String})

	var dde *DuplicateDeclarationError
	if !errors.As(err, &dde) {
		t.Fatalf("expected a duplicate declaration error, got %v", err)
	}

	if err.Error() != "Identifier x already declared" {
		t.Errorf("unexpected message: %s", err)
	}
}

func TestShadowing(t *testing.T) {
	global := NewUniverse().Child(0, 0)
	outer := &ir.Variable{Name: "x", T: ir.Int}
	global.Declare("x", outer)

	inner := &ir.Variable{Name: "x", T: ir.String}
	block := global.Child(0, 0)
	if err := block.Declare("x", inner); err != nil {
		t.Fatalf("shadowing should be allowed: %s", err)
	}

	if b, _ := block.Lookup("x"); b != inner {
		t.Error("inner scope should see the shadowing binding")
	}

	if b, _ := global.Lookup("x"); b != outer {
		t.Error("outer scope should be unaffected by the shadowing binding")
	}
}

func TestFlagInheritance(t *testing.T) {
	global := NewUniverse().Child(0, 0)

	loop := global.Child(InLoop, 0)
	nested := loop.Child(0, 0).Child(0, 0)
	if !nested.Has(InLoop) {
		t.Error("nested blocks should inherit the loop flag")
	}

	fn := nested.Child(InFunction, InLoop|InTask)
	if fn.Has(InLoop) || !fn.Has(InFunction) {
		t.Errorf("function scope has wrong flags: %b", fn.Flags())
	}

	if global.Has(InLoop | InFunction | InTask) {
		t.Error("global scope should have no flags")
	}
}

func TestUniverseIsReadOnly(t *testing.T) {
	u := NewUniverse(newPrint())

	if err := u.Declare("x", &ir.Variable{Name: "x", T: ir.Int}); err == nil {
		t.Error("declaring in the universe should fail")
	}

	if u.Parent() != nil {
		t.Error("the universe has no parent")
	}
}
