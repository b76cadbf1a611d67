package version

import (
	"strings"
	"testing"
)

func TestColoredPlain(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	for _, v := range []string{"0.1.0", "1.2.3-rc.1+build.123", "0.1.0-dev", "weird"} {
		Version = v
		if got := Colored(false); got != v {
			t.Errorf("Colored(false) = %q, want %q", got, v)
		}
	}
}

func TestColoredEnabled(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3-dev"
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Fatalf("Colored(true) = %q", got)
	}
}

func TestDescribe(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = origCommit, origDate }()

	GitCommit, BuildDate = "", ""
	out := Describe(false)
	if strings.Contains(out, "commit:") || strings.Contains(out, "built:") {
		t.Errorf("empty optional fields printed:\n%s", out)
	}

	GitCommit, BuildDate = "abc123", "2024-01-15T10:30:00Z"
	out = Describe(false)
	for _, want := range []string{"tslex " + Version, "commit: abc123", "built: 2024-01-15T10:30:00Z", "go: "} {
		if !strings.Contains(out, want) {
			t.Errorf("Describe lacks %q:\n%s", want, out)
		}
	}
}
