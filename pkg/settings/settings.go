// Package settings provides build metadata, runtime configuration, and
// context helpers shared by the formpath CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "formpath"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration for a single execution: logging verbosity, the
// model document the literal evaluator reads through, and raw name=value
// variable bindings from the command line.
type Run struct {
	MinLogLevel int8
	ModelPath   string
	Vars        []string
	IsQuiet     bool
	ExitOnError bool
}

// NewCliParams returns Run defaults for CLI usage.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		IsQuiet:     false,
		ExitOnError: true,
	}
}
