package version

import "fmt"

const (
	major = 0
	minor = 1
	patch = 0
)

// String returns the human-readable tool version.
func String() string { return fmt.Sprintf("scopec %d.%d.%d", major, minor, patch) }
