package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/dealflow-backend/internal/app.Version=v1.4.0" ./cmd/dealflow
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the string reported by /health, startup logs and
// `dealflow --version`. Missing ldflags fall back to the VCS stamp the Go
// toolchain embeds.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		c, b := vcsStamp()
		if commit == "" {
			commit = c
		}
		if built == "" {
			built = b
		}
	}
	return formatVersion(Version, commit, built)
}

func formatVersion(version, commit, built string) string {
	if commit == "" {
		commit = "unknown"
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func vcsStamp() (revision, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
}
