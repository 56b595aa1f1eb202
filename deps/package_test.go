package deps

import (
	"path/filepath"
	"testing"
)

func TestPackageFiles(t *testing.T) {
	root := filepath.Join("projects", "backup", "src")
	pkg := NewPackage(root)

	if pkg.Name != "src" {
		t.Errorf("expected package name `src`, got `%s`", pkg.Name)
	}

	if NewPackage(root).ID != pkg.ID {
		t.Error("package IDs should be derived from the package path")
	}

	a := pkg.AddFile(filepath.Join(root, "main.scribe"), "let x = 1;")
	b := pkg.AddFile(filepath.Join(root, "util.scribe"), "let y = 2;")

	if len(pkg.Files) != 2 || a.Parent != pkg || b.Parent != pkg {
		t.Fatal("files should be registered in their parent package")
	}

	if a.LogContext.FileID == b.LogContext.FileID {
		t.Error("files should have distinct IDs")
	}

	if a.Source() != "let x = 1;" {
		t.Errorf("unexpected source text %q", a.Source())
	}

	if a.OutputName() != "main.js" {
		t.Errorf("expected output name main.js, got %s", a.OutputName())
	}
}
