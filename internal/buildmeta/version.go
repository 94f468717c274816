// Package buildmeta holds build-time version information injected via ldflags.
//
// These variables are set at build time using:
//
//	go build -ldflags="-X github.com/devantler-tech/wilder/internal/buildmeta.Version=v1.0.0 ..."
//
//nolint:gochecknoglobals
package buildmeta

var (
	// Version is the semantic version of the build (e.g., "v1.0.0").
	Version = "dev"
	// Commit is the Git SHA of the build.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// Info describes a build.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Current returns the build information of the running binary.
func Current() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String formats the build as "<version> (Built on <date> from Git SHA <commit>)".
// It returns an empty string when the version is unknown.
func (i Info) String() string {
	if i.Version == "" {
		return ""
	}

	return i.Version + " (Built on " + i.Date + " from Git SHA " + i.Commit + ")"
}
