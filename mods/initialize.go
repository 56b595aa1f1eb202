package mods

import (
	"cloudscribe/common"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// InitProject creates a new project with the given name at the given path.
// The project reads its sources from a `src` directory which is created along
// with the project file.
func InitProject(name, path string, noProfiles bool) error {
	// convert the project directory to the path to project file
	projFilePath := filepath.Join(path, common.ProjectFileName)

	// check to see if a project already exists
	_, err := os.Stat(projFilePath)
	if err == nil {
		return errors.New("project file already exists")
	}

	if !os.IsNotExist(err) {
		return errors.Wrap(err, "project file error")
	}

	// validate project name
	if !IsValidIdentifier(name) {
		return errors.New("project name must be a valid identifier")
	}

	proj := &tomlProject{
		Name:       name,
		Version:    common.ScribeVersion,
		SourceDirs: []string{"src"},
	}

	if !noProfiles {
		proj.BuildProfiles = []*tomlProfile{newInitProfile(true), newInitProfile(false)}
	}

	if err := os.MkdirAll(filepath.Join(path, "src"), 0755); err != nil {
		return errors.Wrap(err, "error creating source directory")
	}

	// encode and save project to file
	f, err := os.Create(projFilePath)
	if err != nil {
		return errors.Wrap(err, "error creating project file")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlProjectFile{Project: proj}); err != nil {
		return errors.Wrap(err, "error encoding TOML")
	}

	return nil
}

// newInitProfile creates a new initial profile for a project
func newInitProfile(debug bool) *tomlProfile {
	if debug {
		// debug profile is the default
		return &tomlProfile{
			Name:        "debug",
			OutputPath:  filepath.Join("out", "debug"),
			DefaultProf: true,
		}
	}

	return &tomlProfile{
		Name:       "release",
		OutputPath: filepath.Join("out", "release"),
		Optimize:   true,
	}
}
