// Package progress shows progress bars on stderr while large inputs are read.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// MinSize is the smallest input, in bytes, that gets a progress bar.
// Smaller files are read before a bar would render a frame.
const MinSize = 1 << 20

const progressThrottle = 65 * time.Millisecond

var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"JENKINS_URL",
	"TRAVIS",
	"BITBUCKET_BUILD_NUMBER",
	"AZURE_PIPELINES",
}

// IsCI reports whether the process appears to run in a CI environment.
func IsCI() bool {
	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return true
		}
	}
	return false
}

// Enabled reports whether a bar should be shown for an input of size bytes.
func Enabled(size int64, disabled bool) bool {
	return !disabled && size >= MinSize && !IsCI()
}

// NewReader wraps r with a byte progress bar written to stderr.
// r is returned unchanged when Enabled is false.
func NewReader(r io.Reader, size int64, description string, disabled bool) io.Reader {
	if !Enabled(size, disabled) {
		return r
	}

	bar := progressbar.NewOptions64(
		size,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(progressThrottle),
	)

	reader := progressbar.NewReader(r, bar)
	return &reader
}
