package version

import (
	"regexp"
	"testing"
)

func TestVersionFormat(t *testing.T) {
	if Version == "" {
		t.Fatalf("Version should not be empty")
	}
	// "dev" for local builds, x.y.z (optionally v-prefixed) for releases
	if Version != "dev" && !regexp.MustCompile(`^v?\d+\.\d+\.\d+`).MatchString(Version) {
		t.Errorf("Unexpected version format: %q", Version)
	}
}
