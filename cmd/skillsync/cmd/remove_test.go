package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillstack/skillsync/internal/testutil"
)

func setupRemoveFlags(t *testing.T, all, yes bool) {
	t.Helper()
	oldAll, oldYes := removeAll, removeYes
	t.Cleanup(func() {
		removeAll, removeYes = oldAll, oldYes
	})
	removeAll = all
	removeYes = yes
}

func TestRemoveSingleSkill(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	setupFlags(t, "opencode", "global", t.TempDir())
	setupRemoveFlags(t, false, false)

	dest := opencodeSkillsDir(home)
	testutil.MakeSkill(t, dest, "linter", map[string]string{"SKILL.md": "x"})

	var buf bytes.Buffer
	removeCmd.SetOut(&buf)
	removeCmd.SetErr(&buf)

	if err := runRemove(removeCmd, []string{"linter"}); err != nil {
		t.Fatalf("runRemove() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "linter")); !os.IsNotExist(err) {
		t.Error("skill directory should be gone")
	}
	if !strings.Contains(buf.String(), "Done. Removed 1/1 skills.") {
		t.Errorf("output = %q, want summary", buf.String())
	}
}

func TestRemoveMissingSkillIsNotFatal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	setupFlags(t, "opencode", "global", t.TempDir())
	setupRemoveFlags(t, false, false)

	var buf bytes.Buffer
	removeCmd.SetOut(&buf)
	removeCmd.SetErr(&buf)

	if err := runRemove(removeCmd, []string{"ghost"}); err != nil {
		t.Fatalf("runRemove() error = %v, missing skill must not be fatal", err)
	}
	if !strings.Contains(buf.String(), "Warning") {
		t.Errorf("output = %q, want warning", buf.String())
	}
	if !strings.Contains(buf.String(), "Done. Removed 0/1 skills.") {
		t.Errorf("output = %q, want 0/1 summary", buf.String())
	}
}

func TestRemoveAllNoDestination(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	setupFlags(t, "opencode", "global", t.TempDir())
	setupRemoveFlags(t, true, false)

	var buf bytes.Buffer
	removeCmd.SetOut(&buf)
	removeCmd.SetErr(&buf)

	if err := runRemove(removeCmd, nil); err != nil {
		t.Fatalf("runRemove() error = %v, empty destination means zero work", err)
	}
	if !strings.Contains(buf.String(), "No skills to remove.") {
		t.Errorf("output = %q, want nothing-to-remove notice", buf.String())
	}
}

func TestRemoveAll(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	setupFlags(t, "opencode", "global", t.TempDir())
	setupRemoveFlags(t, true, true)

	dest := opencodeSkillsDir(home)
	testutil.MakeSkill(t, dest, "alpha", nil)
	testutil.MakeSkill(t, dest, "beta", nil)
	if err := os.MkdirAll(filepath.Join(dest, ".hidden"), 0755); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	removeCmd.SetOut(&buf)
	removeCmd.SetErr(&buf)

	if err := runRemove(removeCmd, nil); err != nil {
		t.Fatalf("runRemove() error = %v", err)
	}
	for _, name := range []string{"alpha", "beta"} {
		if _, err := os.Stat(filepath.Join(dest, name)); !os.IsNotExist(err) {
			t.Errorf("skill %q should be removed", name)
		}
	}
	if _, err := os.Stat(filepath.Join(dest, ".hidden")); err != nil {
		t.Error("hidden entries must be left alone")
	}
	if !strings.Contains(buf.String(), "Done. Removed 2/2 skills.") {
		t.Errorf("output = %q, want 2/2 summary", buf.String())
	}
}

func TestRemoveAllPromptAborts(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	setupFlags(t, "opencode", "global", t.TempDir())
	setupRemoveFlags(t, true, false)

	dest := opencodeSkillsDir(home)
	testutil.MakeSkill(t, dest, "alpha", nil)

	var buf bytes.Buffer
	removeCmd.SetOut(&buf)
	removeCmd.SetErr(&buf)
	removeCmd.SetIn(strings.NewReader("n\n"))

	if err := runRemove(removeCmd, nil); err != nil {
		t.Fatalf("runRemove() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Aborted.") {
		t.Errorf("output = %q, want abort notice", buf.String())
	}
	if _, err := os.Stat(filepath.Join(dest, "alpha")); err != nil {
		t.Error("declined prompt must not remove anything")
	}
}

func TestRemoveRequiresNameOrAll(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	setupFlags(t, "opencode", "global", t.TempDir())
	setupRemoveFlags(t, false, false)

	var buf bytes.Buffer
	removeCmd.SetOut(&buf)
	removeCmd.SetErr(&buf)

	if err := runRemove(removeCmd, nil); err == nil {
		t.Fatal("runRemove() should fail without a skill name or --all")
	}
}
