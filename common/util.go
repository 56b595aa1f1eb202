package common

import (
	"hash/fnv"
	"path/filepath"
	"strings"
)

// GenerateIDFromPath takes an absolute path and converts it into a numeric ID;
// this is used by packages and files to generate their unique IDs
func GenerateIDFromPath(abspath string) uint {
	h := fnv.New32a()
	h.Write([]byte(filepath.Clean(abspath)))
	return uint(h.Sum32())
}

// OutputNameOf returns the name of the generated file for a given source file:
// the source extension is replaced by the output extension.
func OutputNameOf(srcpath string) string {
	base := filepath.Base(srcpath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + OutputFileExtension
}
