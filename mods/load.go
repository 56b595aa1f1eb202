package mods

import (
	"cloudscribe/common"
	"cloudscribe/logging"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// tomlProjectFile represents the project file as it is encoded in TOML
type tomlProjectFile struct {
	Project *tomlProject `toml:"project"`
}

// tomlProject represents a CloudScribe project as it is encoded in TOML
type tomlProject struct {
	Name          string         `toml:"name"`
	Version       string         `toml:"scribe-version"`
	SourceDirs    []string       `toml:"source-dirs,omitempty"`
	BuildProfiles []*tomlProfile `toml:"profiles"`
}

// tomlProfile represents a profile as it encoded in TOML
type tomlProfile struct {
	Name        string `toml:"name"`
	OutputPath  string `toml:"output"`
	Optimize    bool   `toml:"optimize"`
	DefaultProf bool   `toml:"default"` // in absence of a selected profile, choose this profile
}

// LoadProject loads and validates a project as well as determining the correct
// profile.  `path` is the path to the project directory.  `selectedProfile`
// can be empty if there is no profile selected in which case the default
// profile is used.
func LoadProject(path, selectedProfile string) (*ScribeProject, *BuildProfile, error) {
	abspath, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to resolve project path %s", path)
	}

	buff, err := os.ReadFile(filepath.Join(abspath, common.ProjectFileName))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read project file")
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse project file")
	}

	if tpf.Project == nil {
		return nil, nil, errors.Errorf("project file at %s has no [project] table", abspath)
	}

	proj := &ScribeProject{
		// project root is the directory enclosing the project file
		ProjectRoot: abspath,
	}

	if err := validateProject(proj, tpf.Project); err != nil {
		return nil, nil, err
	}

	prof, err := selectProfile(proj, tpf.Project, selectedProfile)
	if err != nil {
		return nil, nil, err
	}

	// move all the relevant TOML project attributes over to the project
	proj.Name = tpf.Project.Name
	proj.Version = tpf.Project.Version

	if len(tpf.Project.SourceDirs) == 0 {
		proj.SourceDirs = []string{abspath}
	} else {
		for _, dir := range tpf.Project.SourceDirs {
			proj.SourceDirs = append(proj.SourceDirs, proj.resolvePath(dir))
		}
	}

	return proj, prof, nil
}

// validateProject checks that the top level project contents are valid
func validateProject(proj *ScribeProject, tproj *tomlProject) error {
	if tproj.Name == "" {
		return errors.Errorf("missing project name for project at %s", proj.ProjectRoot)
	}

	if !IsValidIdentifier(tproj.Name) {
		return errors.New("project name must be a valid identifier")
	}

	if tproj.Version != common.ScribeVersion {
		logging.LogBuildWarning(
			"project",
			fmt.Sprintf("version of project `%s` (v%s) does not match current scribe version (v%s)", tproj.Name, tproj.Version, common.ScribeVersion),
		)
	}

	return nil
}

// selectProfile validates the profiles of the project and selects either the
// named profile or the default profile
func selectProfile(proj *ScribeProject, tproj *tomlProject, selectedProfile string) (*BuildProfile, error) {
	if len(tproj.BuildProfiles) == 0 {
		return nil, errors.Errorf("project `%s` must provide at least one build profile", tproj.Name)
	}

	seen := make(map[string]struct{})
	for _, tprof := range tproj.BuildProfiles {
		if err := validateProfile(tprof); err != nil {
			return nil, errors.Wrapf(err, "in project `%s`", tproj.Name)
		}

		if _, ok := seen[tprof.Name]; ok {
			return nil, errors.Errorf("project `%s` defines multiple profiles named `%s`", tproj.Name, tprof.Name)
		}

		seen[tprof.Name] = struct{}{}
	}

	if selectedProfile != "" {
		for _, tprof := range tproj.BuildProfiles {
			if tprof.Name == selectedProfile {
				return proj.convertProfile(tprof), nil
			}
		}

		return nil, errors.Errorf("project `%s` has no profile `%s`", tproj.Name, selectedProfile)
	}

	var defaultProf *tomlProfile
	for _, tprof := range tproj.BuildProfiles {
		if !tprof.DefaultProf {
			continue
		}

		if defaultProf != nil {
			logging.LogBuildWarning(
				"project",
				fmt.Sprintf("multiple default profiles in project `%s`; building with profile `%s`", tproj.Name, defaultProf.Name),
			)

			break
		}

		defaultProf = tprof
	}

	if defaultProf == nil {
		return nil, errors.Errorf("project `%s` does not specify a default profile; `--profile` argument is required", tproj.Name)
	}

	return proj.convertProfile(defaultProf), nil
}

// validateProfile checks that a TOML profile has all its required fields
func validateProfile(tprof *tomlProfile) error {
	if tprof.Name == "" {
		return errors.New("profile must specify a name")
	}

	if tprof.OutputPath == "" {
		return errors.Errorf("profile `%s` must specify an output path", tprof.Name)
	}

	return nil
}

// convertProfile converts a TOML build profile into a `*BuildProfile`
func (sp *ScribeProject) convertProfile(tprof *tomlProfile) *BuildProfile {
	return &BuildProfile{
		Name:       tprof.Name,
		OutputPath: sp.resolvePath(tprof.OutputPath),
		Optimize:   tprof.Optimize,
	}
}

// resolvePath makes a path from the project file absolute
func (sp *ScribeProject) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(sp.ProjectRoot, path)
}
