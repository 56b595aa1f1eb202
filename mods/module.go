package mods

// ScribeProject represents a project: specifically, the project configuration.
// Profile information is not stored on the project but returned alongside it
// from `LoadProject`.
type ScribeProject struct {
	// Name is the name of the project
	Name string

	// ProjectRoot is the absolute path to the directory holding the project
	// file
	ProjectRoot string

	// SourceDirs is the list of absolute paths to the directories whose
	// source files make up the project
	SourceDirs []string

	// Version is the compiler version the project was written for
	Version string
}

// BuildProfile represents the profile the compiler will use to build
type BuildProfile struct {
	// Name is the name of the profile as written in the project file
	Name string

	// OutputPath is the absolute path to the directory generated files are
	// written to
	OutputPath string

	// Optimize indicates whether the optimizer should run before generation
	Optimize bool
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (project name, profile name, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
