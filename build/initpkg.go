package build

import (
	"cloudscribe/common"
	"cloudscribe/deps"
	"cloudscribe/logging"
	"fmt"
	"os"
	"path/filepath"
)

// initPackage attempts to initialize a source directory as a package.  It
// loads the text of every source file in the directory; parsing happens when
// the files are compiled.  The package is returned after it is initialized
// along with a boolean flag indicating success or failure.
func (c *Compiler) initPackage(abspath string) (*deps.ScribePackage, bool) {
	// validate package path
	finfo, err := os.Stat(abspath)
	if err != nil {
		logging.LogConfigError("Package", fmt.Sprintf("unable to load package at %s: %s", abspath, err.Error()))
		return nil, false
	}

	if !finfo.IsDir() {
		logging.LogConfigError("Package", "a source directory must be a directory not a file")
		return nil, false
	}

	newpkg := deps.NewPackage(abspath)

	entries, err := os.ReadDir(abspath)
	if err != nil {
		logging.LogConfigError("Package", fmt.Sprintf("error walking directory %s: %s", abspath, err.Error()))
		return nil, false
	}

	for _, entry := range entries {
		// we only want to load source files (not directories or other files)
		if entry.IsDir() || filepath.Ext(entry.Name()) != common.SrcFileExtension {
			continue
		}

		fabspath := filepath.Join(abspath, entry.Name())
		src, err := os.ReadFile(fabspath)
		if err != nil {
			logging.LogConfigError("Package", fmt.Sprintf("unable to read %s: %s", fabspath, err.Error()))
			return nil, false
		}

		newpkg.AddFile(fabspath, string(src))
	}

	if len(newpkg.Files) == 0 {
		logging.LogConfigError("Package", fmt.Sprintf("source directory %s contains no %s files", abspath, common.SrcFileExtension))
		return nil, false
	}

	return newpkg, true
}
