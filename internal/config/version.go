package config

import (
	"os"
	"runtime/debug"
)

// DefaultVersion is reported when neither APP_VERSION nor build info name one.
const DefaultVersion = "0.1.0"

// GetVersion returns the version from APP_VERSION (set by CI/CD) or from the
// build info embedded by the Go toolchain.
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return DefaultVersion
	}
	return versionFromBuildInfo(info)
}

func versionFromBuildInfo(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return DefaultVersion + "+" + s.Value[:7]
		}
	}
	return DefaultVersion
}
