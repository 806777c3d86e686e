package version

import (
	"strings"
	"testing"
)

func TestGetShortVersionString(t *testing.T) {
	prevVersion, prevDate := Version, BuildDate
	t.Cleanup(func() { Version, BuildDate = prevVersion, prevDate })

	tests := []struct {
		version, date, want string
	}{
		{"1.2.3", "2025-03-04T05:06:07Z", "hellodemo version 1.2.3 (2025-03-04)"},
		{"dev", "unknown", "hellodemo version dev (unknown)"},
	}
	for _, tt := range tests {
		Version, BuildDate = tt.version, tt.date
		if got := GetShortVersionString(); got != tt.want {
			t.Errorf("GetShortVersionString() = %q, want %q", got, tt.want)
		}
	}
}

func TestGetVersionString(t *testing.T) {
	prev := GitCommit
	t.Cleanup(func() { GitCommit = prev })
	GitCommit = "abc123"

	got := GetVersionString()
	for _, want := range []string{"abc123", GoVersion, Platform} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in %q", want, got)
		}
	}
	if GetVersion().GitCommit != "abc123" {
		t.Error("GetVersion should reflect GitCommit")
	}
}
