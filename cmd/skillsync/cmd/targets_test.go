package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillstack/skillsync/internal/target"
)

func TestTargetsListsBuiltins(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	setupFlags(t, "", "global", "")

	var buf bytes.Buffer
	targetsCmd.SetOut(&buf)
	targetsCmd.SetErr(&buf)

	if err := runTargets(targetsCmd, nil); err != nil {
		t.Fatalf("runTargets() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"opencode", "antigravity", "~/.config/opencode/skills", "<.agent>/skills"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want %q", out, want)
		}
	}
}

func TestTargetsIncludesConfigDefined(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".config", "skillsync")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}
	cfg := `
[targets.windsurf]
name = "Windsurf"
global_path = "~/.windsurf/skills"
`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	setupFlags(t, "", "global", "")
	t.Cleanup(func() { delete(target.KnownTargets, "windsurf") })

	var buf bytes.Buffer
	targetsCmd.SetOut(&buf)
	targetsCmd.SetErr(&buf)

	if err := runTargets(targetsCmd, nil); err != nil {
		t.Fatalf("runTargets() error = %v", err)
	}
	if !strings.Contains(buf.String(), "windsurf") {
		t.Errorf("output = %q, want config-defined target", buf.String())
	}
}
