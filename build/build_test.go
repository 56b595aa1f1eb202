package build

import (
	"cloudscribe/logging"
	"cloudscribe/mods"
	"cloudscribe/syntax"
	"cloudscribe/walk"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func sourceCtx(src string) *logging.LogContext {
	return &logging.LogContext{FilePath: "test.scribe", Source: src}
}

func TestCompileSource(t *testing.T) {
	src := "let x = 2 + 3; print(x);"

	res, err := CompileSource(sourceCtx(src), Options{})
	if err != nil {
		t.Fatal(err)
	}

	if res.Output != "let x_0 = 2 + 3;\nconsole.log(x_0);" {
		t.Errorf("unexpected output:\n%s", res.Output)
	}

	res, err = CompileSource(sourceCtx(src), Options{Optimize: true})
	if err != nil {
		t.Fatal(err)
	}

	if res.Output != "let x_0 = 5;\nconsole.log(x_0);" {
		t.Errorf("unexpected optimized output:\n%s", res.Output)
	}

	res, err = CompileSource(sourceCtx(src), Options{CheckOnly: true})
	if err != nil {
		t.Fatal(err)
	}

	if res.Program == nil || res.AST == nil || res.Output != "" {
		t.Errorf("checking should analyze without generating: %+v", res)
	}
}

func TestCompileSourceErrors(t *testing.T) {
	if _, err := CompileSource(sourceCtx("let x = ;"), Options{}); err == nil {
		t.Error("expected a syntax error")
	} else if _, ok := err.(*syntax.SyntaxError); !ok {
		t.Errorf("expected a *syntax.SyntaxError, got %T", err)
	}

	if _, err := CompileSource(sourceCtx("break;"), Options{}); err == nil {
		t.Error("expected a semantic error")
	} else if _, ok := err.(*walk.SemanticError); !ok {
		t.Errorf("expected a *walk.SemanticError, got %T", err)
	}
}

func TestCompileSourceRunsAreIndependent(t *testing.T) {
	src := `function fib(n: int): int {
	if n < 2 { return n; }
	return fib(n - 1) + fib(n - 2);
}
for i in [1, 2, 3] { print(fib(i)); }`

	first, err := CompileSource(sourceCtx(src), Options{Optimize: true})
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	outputs := make([]string, 8)
	for i := range outputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			if res, err := CompileSource(sourceCtx(src), Options{Optimize: true}); err == nil {
				outputs[i] = res.Output
			}
		}(i)
	}

	wg.Wait()

	for i, out := range outputs {
		if out != first.Output {
			t.Errorf("run %d produced different output:\n%s", i, out)
		}
	}
}

func TestUniverseIsFreshPerRun(t *testing.T) {
	a, b := NewUniverse(), NewUniverse()

	pa, ok := a.Lookup("print")
	if !ok {
		t.Fatal("universe should hold print")
	}

	pb, _ := b.Lookup("print")
	if pa == pb {
		t.Error("each universe should hold its own intrinsics")
	}

	if pa.Type().Repr() != "(any) -> void" {
		t.Errorf("unexpected type of print: %s", pa.Type().Repr())
	}
}

// newProject creates a project with the given source files in `src`
func newProject(t *testing.T, files map[string]string) (*mods.ScribeProject, *mods.BuildProfile) {
	t.Helper()

	dir := t.TempDir()
	if err := mods.InitProject("demo", dir, false); err != nil {
		t.Fatal(err)
	}

	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, "src", name), []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
	}

	proj, prof, err := mods.LoadProject(dir, "")
	if err != nil {
		t.Fatal(err)
	}

	return proj, prof
}

func TestCompilerBuildsProject(t *testing.T) {
	logging.Initialize("", "silent")

	proj, prof := newProject(t, map[string]string{
		"main.scribe":  "let greeting = \"hi\"; print(greeting);",
		"tasks.scribe": "task backup { print(\"saving\"); }",
		"notes.txt":    "not a source file",
	})

	c := NewCompiler(proj, prof)
	if !c.Compile(context.Background()) {
		t.Fatal("compilation should succeed")
	}

	if len(c.Files()) != 2 {
		t.Errorf("expected 2 source files, got %d", len(c.Files()))
	}

	out, err := os.ReadFile(filepath.Join(prof.OutputPath, "main.js"))
	if err != nil {
		t.Fatal(err)
	}

	if string(out) != "let greeting_0 = \"hi\";\nconsole.log(greeting_0);\n" {
		t.Errorf("unexpected output for main.scribe:\n%s", out)
	}

	out, err = os.ReadFile(filepath.Join(prof.OutputPath, "tasks.js"))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasSuffix(string(out), "backup_0();\n") {
		t.Errorf("task should be invoked after it is declared:\n%s", out)
	}
}

func TestCompilerReportsFileErrors(t *testing.T) {
	logging.Initialize("", "silent")

	proj, prof := newProject(t, map[string]string{
		"good.scribe": "let x = 1;",
		"bad.scribe":  "let x = y;",
	})

	c := NewCompiler(proj, prof)
	if c.Compile(context.Background()) {
		t.Fatal("compilation should fail")
	}

	if logging.ErrorCount() != 1 {
		t.Errorf("expected exactly one error, got %d", logging.ErrorCount())
	}

	for _, file := range c.Files() {
		if filepath.Base(file.FilePath) == "good.scribe" && file.Output != "let x_0 = 1;" {
			t.Errorf("good file should still be compiled, got %q", file.Output)
		}
	}

	if _, err := os.Stat(filepath.Join(prof.OutputPath, "good.js")); err == nil {
		t.Error("no output should be written when a file fails")
	}
}

func TestCompilerRejectsEmptySourceDir(t *testing.T) {
	logging.Initialize("", "silent")

	proj, prof := newProject(t, nil)
	if NewCompiler(proj, prof).Compile(context.Background()) {
		t.Error("a source directory without sources should fail to load")
	}
}

func TestCompilerRejectsOutputCollisions(t *testing.T) {
	logging.Initialize("", "silent")

	proj, prof := newProject(t, map[string]string{"main.scribe": "let a = 1;"})

	lib := filepath.Join(proj.ProjectRoot, "lib")
	if err := os.Mkdir(lib, 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(lib, "main.scribe"), []byte("let b = 2;"), 0644); err != nil {
		t.Fatal(err)
	}

	proj.SourceDirs = append(proj.SourceDirs, lib)
	if NewCompiler(proj, prof).Compile(context.Background()) {
		t.Error("two sources generating the same output file should fail")
	}
}

func TestCompilerHonorsCancellation(t *testing.T) {
	logging.Initialize("", "silent")

	proj, prof := newProject(t, map[string]string{"main.scribe": "let a = 1;"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if NewCompiler(proj, prof).Compile(ctx) {
		t.Error("a cancelled build should fail")
	}
}
