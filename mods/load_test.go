package mods

import (
	"cloudscribe/common"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, common.ProjectFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return dir
}

const validProject = `
[project]
name = "backup"
scribe-version = "0.1.0"
source-dirs = ["src", "lib"]

[[project.profiles]]
name = "debug"
output = "out/debug"
default = true

[[project.profiles]]
name = "release"
output = "out/release"
optimize = true
`

func TestLoadProject(t *testing.T) {
	dir := writeProject(t, validProject)

	proj, prof, err := LoadProject(dir, "")
	if err != nil {
		t.Fatal(err)
	}

	if proj.Name != "backup" || proj.Version != "0.1.0" {
		t.Errorf("unexpected project: %+v", proj)
	}

	if len(proj.SourceDirs) != 2 || proj.SourceDirs[0] != filepath.Join(dir, "src") {
		t.Errorf("source directories should be resolved against the project root: %v", proj.SourceDirs)
	}

	if prof.Name != "debug" || prof.Optimize || prof.OutputPath != filepath.Join(dir, "out", "debug") {
		t.Errorf("expected the default profile, got %+v", prof)
	}

	_, prof, err = LoadProject(dir, "release")
	if err != nil {
		t.Fatal(err)
	}

	if prof.Name != "release" || !prof.Optimize {
		t.Errorf("expected the release profile, got %+v", prof)
	}
}

func TestLoadProjectDefaultsSourceDir(t *testing.T) {
	dir := writeProject(t, `
[project]
name = "p"
scribe-version = "0.1.0"

[[project.profiles]]
name = "debug"
output = "out"
default = true
`)

	proj, _, err := LoadProject(dir, "")
	if err != nil {
		t.Fatal(err)
	}

	if len(proj.SourceDirs) != 1 || proj.SourceDirs[0] != dir {
		t.Errorf("project root should be the only source directory: %v", proj.SourceDirs)
	}
}

func TestLoadProjectErrors(t *testing.T) {
	cases := []struct {
		content, profile, want string
	}{
		{"[project]\nscribe-version = \"0.1.0\"\n", "", "missing project name"},
		{"[project]\nname = \"1abc\"\n", "", "valid identifier"},
		{"[other]\nname = \"x\"\n", "", "no [project] table"},
		{"[project]\nname = \"p\"\nscribe-version = \"0.1.0\"\n", "", "at least one build profile"},
		{
			"[project]\nname = \"p\"\nscribe-version = \"0.1.0\"\n[[project.profiles]]\nname = \"debug\"\noutput = \"out\"\n",
			"",
			"does not specify a default profile",
		},
		{
			"[project]\nname = \"p\"\nscribe-version = \"0.1.0\"\n[[project.profiles]]\nname = \"debug\"\ndefault = true\n",
			"",
			"must specify an output path",
		},
		{
			"[project]\nname = \"p\"\nscribe-version = \"0.1.0\"\n[[project.profiles]]\noutput = \"out\"\n",
			"",
			"must specify a name",
		},
		{
			"[project]\nname = \"p\"\nscribe-version = \"0.1.0\"\n[[project.profiles]]\nname = \"a\"\noutput = \"x\"\n[[project.profiles]]\nname = \"a\"\noutput = \"y\"\n",
			"a",
			"multiple profiles named `a`",
		},
		{validProject, "fast", "has no profile `fast`"},
		{"[project\nname = ", "", "failed to parse project file"},
	}

	for _, c := range cases {
		dir := writeProject(t, c.content)

		_, _, err := LoadProject(dir, c.profile)
		if err == nil {
			t.Errorf("%q: expected an error", c.content)
		} else if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%q: expected error containing %q, got %q", c.content, c.want, err)
		}
	}

	if _, _, err := LoadProject(t.TempDir(), ""); err == nil {
		t.Error("loading a directory without a project file should fail")
	}
}

func TestInitProject(t *testing.T) {
	dir := t.TempDir()

	if err := InitProject("backup", dir, false); err != nil {
		t.Fatal(err)
	}

	if info, err := os.Stat(filepath.Join(dir, "src")); err != nil || !info.IsDir() {
		t.Error("init should create the source directory")
	}

	proj, prof, err := LoadProject(dir, "")
	if err != nil {
		t.Fatal(err)
	}

	if proj.Name != "backup" || prof.Name != "debug" {
		t.Errorf("unexpected initialized project: %+v %+v", proj, prof)
	}

	if _, prof, err = LoadProject(dir, "release"); err != nil || !prof.Optimize {
		t.Errorf("release profile should optimize: %+v %v", prof, err)
	}

	if err := InitProject("backup", dir, false); err == nil {
		t.Error("init should refuse to overwrite an existing project")
	}

	if err := InitProject("not valid", t.TempDir(), true); err == nil {
		t.Error("init should reject invalid project names")
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"a", "_x", "backup2", "Proj_Name"}
	invalid := []string{"", "2x", "a-b", "a b"}

	for _, s := range valid {
		if !IsValidIdentifier(s) {
			t.Errorf("%q should be a valid identifier", s)
		}
	}

	for _, s := range invalid {
		if IsValidIdentifier(s) {
			t.Errorf("%q should not be a valid identifier", s)
		}
	}
}
