package domain

import (
	"testing"
	"time"
)

func TestCommandSettingsTimeoutDefaults(t *testing.T) {
	var s CommandSettings
	if got := s.Timeout(); got != 120*time.Second {
		t.Fatalf("Timeout() = %s, want 120s default", got)
	}

	s.CommandTimeoutMS = 5000
	if got := s.Timeout(); got != 5*time.Second {
		t.Fatalf("Timeout() = %s, want 5s", got)
	}

	s.CommandTimeoutMS = -1
	if got := s.Timeout(); got != 120*time.Second {
		t.Fatalf("Timeout() = %s for negative value, want default", got)
	}
}

func TestCommandSettingsPollIntervalDefaults(t *testing.T) {
	var s CommandSettings
	if got := s.PollInterval(); got != 500*time.Millisecond {
		t.Fatalf("PollInterval() = %s, want 500ms default", got)
	}

	s.PollIntervalMS = 50
	if got := s.PollInterval(); got != 50*time.Millisecond {
		t.Fatalf("PollInterval() = %s, want 50ms", got)
	}
}

func TestCommandSettingsFileMode(t *testing.T) {
	cases := []struct {
		raw  string
		want uint32
	}{
		{"", 0o600},
		{"0600", 0o600},
		{"0644", 0o644},
		{"0o644", 0o644},
		{"garbage", 0o600},
	}
	for _, tc := range cases {
		s := CommandSettings{CommandFileMode: tc.raw}
		if got := s.FileMode(); uint32(got) != tc.want {
			t.Errorf("FileMode(%q) = %o, want %o", tc.raw, got, tc.want)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Missing: []string{"project_name", "audience"}}
	want := "missing required variables: project_name, audience"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	err = &ValidationError{Reason: "template name is required"}
	if got := err.Error(); got != "template name is required" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestCloneMetadata(t *testing.T) {
	if got := CloneMetadata(nil); got != nil {
		t.Fatalf("CloneMetadata(nil) = %v, want nil", got)
	}

	src := map[string]string{"version": "1"}
	clone := CloneMetadata(src)
	clone["version"] = "2"
	if src["version"] != "1" {
		t.Fatal("CloneMetadata() shares backing map")
	}
}
