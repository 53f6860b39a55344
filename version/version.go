// Package version reports which build of fet is running.
package version

import "runtime/debug"

// Version is set at build time, e.g.
//
//	go build -ldflags "-X github.com/earfet/fet/version.Version=$(git describe --dirty)" ./cmd/fet
var Version string

// Hash is the short VCS revision the binary was built from, with a -dirty
// suffix for modified trees, or "" when the build carries no VCS info.
var Hash = vcsHash()

func vcsHash() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var revision string
	modified := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && modified {
		revision += "-dirty"
	}
	return revision
}

// String returns Version, falling back to Hash and then to "dev".
func String() string {
	switch {
	case Version != "":
		return Version
	case Hash != "":
		return Hash
	}
	return "dev"
}
