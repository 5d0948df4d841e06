package buildversion

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags.
var (
	version = "unknown"
	gitSHA  = "unknown"
)

func Version() string {
	return version
}

func GitSHA() string {
	return gitSHA
}

func GoVersion() string {
	return runtime.Version()
}

func GetUserAgent() string {
	return fmt.Sprintf("obsctl/%s (%s/%s)", version, runtime.GOOS, runtime.GOARCH)
}
