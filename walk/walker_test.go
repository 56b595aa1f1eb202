package walk

import (
	"cloudscribe/ir"
	"cloudscribe/logging"
	"cloudscribe/resolve"
	"cloudscribe/syntax"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func testUniverse() *resolve.Scope {
	return resolve.NewUniverse(&ir.Function{
		Name:     "print",
		Params:   []*ir.Parameter{{Name: "value", T: ir.Any}},
		T:        &ir.FunctionType{ParamTypes: []ir.Type{ir.Any}, ReturnType: ir.Void},
		External: "console.log",
	})
}

func parseSrc(t *testing.T, src string) *syntax.ASTBranch {
	t.Helper()

	root, err := syntax.Parse(&logging.LogContext{FilePath: "test.scribe", Source: src})
	if err != nil {
		t.Fatalf("%q: unexpected syntax error: %s", src, err)
	}

	return root
}

func walkSrc(t *testing.T, src string) (*ir.Program, error) {
	t.Helper()
	return NewWalker(testUniverse()).WalkProgram(parseSrc(t, src))
}

func TestWalkAccepts(t *testing.T) {
	sources := []string{
		"let x = 1; x++; x--;",
		"const c = 1; c++;",
		"let x = 10; x = x * 2;",
		"function f(x: int): int { x = 2; return x; }",
		"function fact(n: int): int { return n < 2 ? 1 : n * fact(n - 1); }",
		"task t { return; }",
		"task t { return 5; }",
		"while true { if false { break; } }",
		"for i in [1, 2] { print(i); }",
		"let a = [1]; a[0] = 2;",
		"let o = some 1; o.x = 2;",
		`print("a" + 1);`,
		"let f = print; f(1);",
		"let g = some 5 ?? 3;",
		"let x = 1; if x > 0 { let x = \"shadow\"; print(x); } else { let x = true; }",
		"function apply(f: (int) -> int, x: int): int { return f(x); }",
		"let b = 1 | 2 & 3 ^ 4;",
		"let xs = [[1], [2]]; let y = xs[0][0] + 1;",
		"for i in [1] { for j in [2] { break; } break; }",
		"function outer() { function inner() { return; } inner(); }",
	}

	for _, src := range sources {
		if _, err := walkSrc(t, src); err != nil {
			t.Errorf("%q: unexpected error: %s", src, err)
		}
	}
}

func TestWalkRejects(t *testing.T) {
	cases := []struct {
		src, want string
		kind      int
	}{
		{"let x = y;", "Identifier y not declared", logging.LMKName},
		{"let x = x;", "Identifier x not declared", logging.LMKName},
		{"let x = 1; let x = 2;", "Identifier x already declared", logging.LMKDef},
		{"function f(a: int, a: int) {}", "Identifier a already declared", logging.LMKDef},
		{"function f(a: int) { let a = 1; }", "Identifier a already declared", logging.LMKDef},
		{"if 1 { }", "Expected a boolean", logging.LMKTyping},
		{"while \"yes\" { }", "Expected a boolean", logging.LMKTyping},
		{"let x = 1 ? 2 : 3;", "Expected a boolean", logging.LMKTyping},
		{"let x = 1 && true;", "Expected a boolean", logging.LMKTyping},
		{`let s = "a"; s++;`, "Expected an integer", logging.LMKTyping},
		{"let b = true; b--;", "Expected an integer", logging.LMKTyping},
		{"let a = [1]; let b = a[true];", "Expected an integer", logging.LMKTyping},
		{"const c = 1; c = 2;", "Cannot assign to immutable variable", logging.LMKImmut},
		{"for i in [1] { i = 2; }", "Cannot assign to immutable variable", logging.LMKImmut},
		{"function f() {} f = 1;", "Cannot assign to function f", logging.LMKImmut},
		{"task t {} t = 1;", "Cannot assign to task t", logging.LMKImmut},
		{"break;", "Break can only appear in a loop", logging.LMKUsage},
		{"if true { break; }", "Break can only appear in a loop", logging.LMKUsage},
		{"while true { function f() { break; } }", "Break can only appear in a loop", logging.LMKUsage},
		{"while true { task t { break; } }", "Break can only appear in a loop", logging.LMKUsage},
		{"return;", "Return can only appear in a function or task", logging.LMKUsage},
		{"while true { return 1; }", "Return can only appear in a function or task", logging.LMKUsage},
		{"for i in 5 { }", "Expected an array", logging.LMKTyping},
		{"let x = 5; let y = x[0];", "Expected an array", logging.LMKTyping},
		{"let x = 5; x();", "Expected a function", logging.LMKTyping},
		{"task t {} t();", "Expected a function", logging.LMKTyping},
		{"print(1, 2);", "Wrong number of arguments: expected 1, got 2", logging.LMKArg},
		{"function f(a: int) {} f();", "Wrong number of arguments: expected 1, got 0", logging.LMKArg},
		{"let x = true + 1;", "Expected compatible types for '+' operation, got boolean and int", logging.LMKTyping},
		{`let x = "a" - 1;`, "Expected int for '-' operation", logging.LMKTyping},
		{"let x = 2 ** true;", "Expected int for '**' operation", logging.LMKTyping},
		{"let x = !1;", "Expected a boolean for '!' operation", logging.LMKTyping},
		{`let x = -"a";`, "Expected an integer for '-' operation", logging.LMKTyping},
		{"function f(x: foo) {}", "Unknown type foo", logging.LMKTyping},
		{"function f(): [strng] {}", "Unknown type strng", logging.LMKTyping},
		{"if true { let z = 1; } z++;", "Identifier z not declared", logging.LMKName},
		{"for i in [1] { } i++;", "Identifier i not declared", logging.LMKName},
	}

	for _, c := range cases {
		_, err := walkSrc(t, c.src)
		if err == nil {
			t.Errorf("%q: expected a semantic error", c.src)
			continue
		}

		se, ok := err.(*SemanticError)
		if !ok {
			t.Errorf("%q: expected a *SemanticError, got %T", c.src, err)
			continue
		}

		if !strings.Contains(se.Message, c.want) {
			t.Errorf("%q: expected error containing %q, got %q", c.src, c.want, se.Message)
		}

		if se.Kind != c.kind {
			t.Errorf("%q: expected error kind %d, got %d", c.src, c.kind, se.Kind)
		}
	}
}

func TestWalkErrorPosition(t *testing.T) {
	_, err := walkSrc(t, "let a = 1;\nlet x = y;")
	if err == nil {
		t.Fatal("expected an error")
	}

	if !strings.HasPrefix(err.Error(), "2:9: ") {
		t.Errorf("wrong error position: %s", err)
	}
}

func TestWalkTypes(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"let v = 1;", "int"},
		{"let v = 1.5;", "int"},
		{`let v = "s";`, "string"},
		{"let v = false;", "boolean"},
		{"let v = [1, 2];", "[int]"},
		{"let v = [];", "[any]"},
		{`let v = ["a", 1];`, "[string]"},
		{`let v = "a" + 1;`, "string"},
		{`let v = 1 + "a";`, "string"},
		{"let v = 1 + 2;", "int"},
		{"let v = 1 < 2;", "boolean"},
		{"let v = some 5;", "int?"},
		{`let v = some 5 ?? "x";`, "string"},
		{"let v = true ? 1 : 2;", "int"},
		{"let v = 1 | 2;", "int"},
		{"let v = print;", "(any) -> void"},
		{"let v = print(1);", "void"},
		{"let v = [[1]][0];", "[int]"},
		{"let v = (((3)));", "int"},
	}

	for _, c := range cases {
		prog, err := walkSrc(t, c.src)
		if err != nil {
			t.Errorf("%q: unexpected error: %s", c.src, err)
			continue
		}

		decl := prog.Statements[0].(*ir.VariableDeclaration)
		if got := decl.Variable.T.Repr(); got != c.want {
			t.Errorf("%q: expected type %s, got %s", c.src, c.want, got)
		}
	}
}

func TestWalkFunctionSignature(t *testing.T) {
	prog, err := walkSrc(t, "function add(x: int, y: int): int { return x + y; } function noop() {}")
	if err != nil {
		t.Fatal(err)
	}

	add := prog.Statements[0].(*ir.FunctionDeclaration).Fun
	if add.T.Repr() != "(int, int) -> int" {
		t.Errorf("wrong signature for add: %s", add.T.Repr())
	}

	ret := add.Body[0].(*ir.ReturnStmt).Expr.(*ir.Binary)
	if ret.Left != add.Params[0] || ret.Right != add.Params[1] {
		t.Error("parameter references should resolve to the parameter bindings")
	}

	noop := prog.Statements[1].(*ir.FunctionDeclaration).Fun
	if noop.T.Repr() != "() -> void" {
		t.Errorf("wrong signature for noop: %s", noop.T.Repr())
	}
}

func TestWalkShadowing(t *testing.T) {
	prog, err := walkSrc(t, "let x = 1; if true { let x = \"s\"; x = \"t\"; } x = 2;")
	if err != nil {
		t.Fatal(err)
	}

	outer := prog.Statements[0].(*ir.VariableDeclaration).Variable
	ifStmt := prog.Statements[1].(*ir.ShortIfStmt)
	inner := ifStmt.Consequent[0].(*ir.VariableDeclaration).Variable

	if inner == outer {
		t.Fatal("inner declaration should create a new binding")
	}

	if ifStmt.Consequent[1].(*ir.Assignment).Target != inner {
		t.Error("assignment in the block should target the inner binding")
	}

	if prog.Statements[2].(*ir.Assignment).Target != outer {
		t.Error("assignment after the block should target the outer binding")
	}
}

func TestWalkStatementKinds(t *testing.T) {
	prog, err := walkSrc(t, "if true { } else { } if false { } for i in [1] { } task t { return; }")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := prog.Statements[0].(*ir.IfStmt); !ok {
		t.Errorf("expected an if statement, got %T", prog.Statements[0])
	}

	if _, ok := prog.Statements[1].(*ir.ShortIfStmt); !ok {
		t.Errorf("expected a short if statement, got %T", prog.Statements[1])
	}

	forStmt := prog.Statements[2].(*ir.ForStmt)
	if forStmt.Iterator.Mutable || forStmt.Iterator.T != ir.Int {
		t.Errorf("loop iterator should be an immutable int: %+v", forStmt.Iterator)
	}

	task := prog.Statements[3].(*ir.TaskDeclaration).Task
	if _, ok := task.Body[0].(*ir.ShortReturnStmt); !ok {
		t.Errorf("expected a short return, got %T", task.Body[0])
	}
}

func TestWalkIsDeterministic(t *testing.T) {
	src := `let xs = [1, 2, 3];
let total = 0;
for x in xs {
	if x % 2 == 0 {
		total = total + x;
	} else {
		print("odd: " + x);
	}
}
while total > 10 { total--; }
let label = total > 3 ? "big" : "small";`

	root := parseSrc(t, src)
	w := NewWalker(testUniverse())

	first, err := w.WalkProgram(root)
	if err != nil {
		t.Fatal(err)
	}

	second, err := w.WalkProgram(root)
	if err != nil {
		t.Fatal(err)
	}

	if diff := pretty.Diff(first, second); len(diff) > 0 {
		t.Errorf("walking the same tree twice gave different programs:\n%s", strings.Join(diff, "\n"))
	}
}
