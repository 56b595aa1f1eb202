package common

const (
	SrcFileExtension    = ".scribe"
	OutputFileExtension = ".js"
	ProjectFileName     = "scribe.toml"
	ScribeVersion       = "0.1.0"
)
