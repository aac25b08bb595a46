package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"version only", Info{Version: "1.2.3"}, "1.2.3"},
		{"with commit", Info{Version: "1.2.3", GitCommit: "abcdef1234567890"}, "1.2.3 (abcdef12)"},
		{"with short commit", Info{Version: "dev", GitCommit: "abc"}, "dev (abc)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	withTime := Info{Version: "1.0.0", BuildTime: "2026-01-02T00:00:00Z"}
	if got := withTime.String(); !strings.Contains(got, "built 2026-01-02") {
		t.Errorf("String() = %q, want build time included", got)
	}
}
