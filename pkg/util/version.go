package util

import "runtime"

// 构建时通过 -ldflags "-X debate-split/pkg/util.version=..." 注入
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

func GetVersion() VersionInfo {
	return VersionInfo{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}
}
