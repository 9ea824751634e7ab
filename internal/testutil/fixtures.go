// Package testutil provides test fixtures and helpers for skillsync.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MakeSkill creates a skill directory under root with the given files.
// Keys are slash-separated relative paths; parent directories are
// created as needed. Returns the skill directory path.
func MakeSkill(t *testing.T, root, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating skill dir %s: %v", dir, err)
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating dir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return dir
}

// MakeSourceRoot creates a source repository root with the given skill
// names, each holding a minimal SKILL.md.
func MakeSourceRoot(t *testing.T, skills ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range skills {
		MakeSkill(t, root, name, map[string]string{
			"SKILL.md": "---\nname: " + name + "\ndescription: " + name + " skill\n---\n# " + name + "\n",
		})
	}
	return root
}

// ReadTree reads every file under root into a map keyed by
// slash-separated relative path.
func ReadTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("reading tree %s: %v", root, err)
	}
	return tree
}
