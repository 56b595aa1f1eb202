package deps

import (
	"cloudscribe/common"
	"cloudscribe/ir"
	"cloudscribe/logging"
	"cloudscribe/syntax"
	"path/filepath"
)

// ScribePackage represents a source directory of a CloudScribe project.  Every
// file in a package is compiled on its own: files share no declarations.
type ScribePackage struct {
	// ID is a unique identifier for a package that is based on the package path
	ID uint

	// Name is the short name of the package
	Name string

	// RootPath is the absolute path to the root directory of the package
	RootPath string

	// Files contains all the individual files in this package
	Files []*ScribeFile
}

// NewPackage creates a new package based on the given absolute, root path
// (does NOT perform file initialization)
func NewPackage(rootPath string) *ScribePackage {
	return &ScribePackage{
		ID:       common.GenerateIDFromPath(rootPath),
		Name:     filepath.Base(rootPath),
		RootPath: rootPath,
	}
}

// AddFile creates a new file in the package holding the given source text
func (sp *ScribePackage) AddFile(fabspath, src string) *ScribeFile {
	sf := &ScribeFile{
		Parent:   sp,
		FilePath: fabspath,
		LogContext: &logging.LogContext{
			FileID:   common.GenerateIDFromPath(fabspath),
			FilePath: fabspath,
			Source:   src,
		},
	}

	sp.Files = append(sp.Files, sf)
	return sf
}

// ScribeFile represents a file of CloudScribe source code and the products of
// each stage of its compilation
type ScribeFile struct {
	// Parent is a reference to this file's parent package
	Parent *ScribePackage

	// FilePath is the absolute path to the file
	FilePath string

	// LogContext is the log context for this file.  It also holds the source
	// text of the file.
	LogContext *logging.LogContext

	// AST is the concrete syntax tree of the file
	AST *syntax.ASTBranch

	// Program is the (possibly optimized) IR of the file
	Program *ir.Program

	// Output is the generated text of the file
	Output string
}

// Source returns the source text of the file
func (sf *ScribeFile) Source() string {
	return sf.LogContext.Source
}

// OutputName returns the name of the file generated from this file
func (sf *ScribeFile) OutputName() string {
	return common.OutputNameOf(sf.FilePath)
}
