package cli

import (
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("", "", "")

	if version != "1.0.0" || commit != "abc123" || date != "2024-01-01" {
		t.Errorf("SetVersion stored %q %q %q", version, commit, date)
	}

	out, _, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version error: %v", err)
	}
	if !strings.Contains(out, "lvpath 1.0.0") || !strings.Contains(out, "commit: abc123") {
		t.Errorf("--version output = %q", out)
	}
}

func TestRootHasCommands(t *testing.T) {
	root := newRootCmd(nil, nil)
	for _, name := range []string{"shortest", "kshortest", "grid"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered (err=%v)", name, err)
		}
	}
}
