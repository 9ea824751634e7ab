// Package syncer implements the install, list, and remove operations
// that mirror skill directories from a source repository into a
// destination root. Skills are opaque directory trees; install is a
// whole-directory overwrite and remove is a whole-directory delete.
// Batches are best-effort: each skill yields an Outcome and a failure
// never aborts the rest of the batch.
package syncer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skillstack/skillsync/internal/errors"
	"github.com/skillstack/skillsync/internal/logging"
	"github.com/skillstack/skillsync/internal/skill"
)

// managerDirs are source-repository tool directories that must never
// be installed as skills by `install --all`.
var managerDirs = map[string]bool{
	"skills-manager":        true,
	"opencode-installer":    true,
	"antigravity-installer": true,
}

// Status classifies the outcome of a single skill operation.
type Status string

const (
	StatusInstalled Status = "installed"
	StatusRemoved   Status = "removed"
	StatusSkipped   Status = "skipped" // source or destination missing
	StatusFailed    Status = "failed"  // I/O error during copy or delete
)

// Outcome records the result of one skill within a batch.
type Outcome struct {
	Skill  string
	Status Status
	Err    error
}

// Succeeded counts the outcomes that completed their operation.
func Succeeded(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Status == StatusInstalled || o.Status == StatusRemoved {
			n++
		}
	}
	return n
}

// Entry describes an installed skill for listing.
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
}

// Syncer performs skill operations between a source and a destination root.
type Syncer struct {
	SourceRoot string
	DestRoot   string

	// Exclude lists additional source directory names skipped by
	// AvailableSkills, on top of the built-in manager directories.
	Exclude []string

	// DryRun reports what install would do without touching the
	// destination.
	DryRun bool

	Out    io.Writer
	Logger *slog.Logger
}

func (s *Syncer) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (s *Syncer) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Syncer) excluded(name string) bool {
	if managerDirs[name] {
		return true
	}
	for _, e := range s.Exclude {
		if name == e {
			return true
		}
	}
	return false
}

// AvailableSkills enumerates the installable skills in the source
// root: immediate subdirectories minus hidden entries and manager
// tool directories, sorted.
func (s *Syncer) AvailableSkills() ([]string, error) {
	names, err := subdirectories(s.SourceRoot)
	if err != nil {
		return nil, errors.IOReadError(s.SourceRoot, err)
	}
	skills := names[:0]
	for _, name := range names {
		if !s.excluded(name) {
			skills = append(skills, name)
		}
	}
	return skills, nil
}

// InstalledSkills enumerates the skills present in the destination
// root. A nonexistent destination root means zero skills, not an error.
func (s *Syncer) InstalledSkills() ([]Entry, error) {
	names, err := subdirectories(s.DestRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.IOReadError(s.DestRoot, err)
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		dir := filepath.Join(s.DestRoot, name)
		entries = append(entries, Entry{
			Name:        name,
			Path:        dir,
			Description: skill.ReadMeta(dir).Description,
		})
	}
	return entries, nil
}

// Install copies each named skill from the source root into the
// destination root, overwriting any existing installation.
func (s *Syncer) Install(names []string) []Outcome {
	outcomes := make([]Outcome, 0, len(names))
	for _, name := range names {
		outcomes = append(outcomes, s.installOne(name))
	}
	return outcomes
}

func (s *Syncer) installOne(name string) Outcome {
	src := filepath.Join(s.SourceRoot, name)
	dst := filepath.Join(s.DestRoot, name)
	log := logging.WithSkill(s.logger(), name)

	fmt.Fprintf(s.out(), "Installing %q...\n", name)

	if _, err := os.Stat(src); err != nil {
		fmt.Fprintf(s.out(), "  Warning: source skill %q not found at %s. Skipping.\n", name, src)
		return Outcome{Skill: name, Status: StatusSkipped}
	}

	if s.DryRun {
		fmt.Fprintf(s.out(), "  Would install to %s\n", dst)
		return Outcome{Skill: name, Status: StatusInstalled}
	}

	if _, err := os.Stat(dst); err == nil {
		fmt.Fprintf(s.out(), "  Removing existing installation at %s\n", dst)
		if err := os.RemoveAll(dst); err != nil {
			return s.failed(name, errors.IOCopyError(name, err))
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return s.failed(name, errors.IOCopyError(name, err))
	}

	if err := copyDir(src, dst); err != nil {
		return s.failed(name, errors.IOCopyError(name, err))
	}

	log.Debug("skill installed", "source", src, "dest", dst)
	fmt.Fprintf(s.out(), "  Installed to %s\n", dst)
	return Outcome{Skill: name, Status: StatusInstalled}
}

// Remove deletes each named skill from the destination root.
func (s *Syncer) Remove(names []string) []Outcome {
	outcomes := make([]Outcome, 0, len(names))
	for _, name := range names {
		outcomes = append(outcomes, s.removeOne(name))
	}
	return outcomes
}

func (s *Syncer) removeOne(name string) Outcome {
	dst := filepath.Join(s.DestRoot, name)

	fmt.Fprintf(s.out(), "Removing %q...\n", name)

	if _, err := os.Stat(dst); err != nil {
		fmt.Fprintf(s.out(), "  Warning: skill %q is not installed (path %s not found). Skipping.\n", name, dst)
		return Outcome{Skill: name, Status: StatusSkipped}
	}

	if err := os.RemoveAll(dst); err != nil {
		return s.failed(name, errors.IORemoveError(name, err))
	}

	s.logger().Debug("skill removed", "skill", name, "dest", dst)
	fmt.Fprintf(s.out(), "  Removed %s\n", dst)
	return Outcome{Skill: name, Status: StatusRemoved}
}

func (s *Syncer) failed(name string, err error) Outcome {
	s.logger().Error("skill operation failed", "skill", name, "error", err)
	fmt.Fprintf(s.out(), "  %v\n", err)
	return Outcome{Skill: name, Status: StatusFailed, Err: err}
}

// subdirectories returns the sorted names of the immediate non-hidden
// subdirectories of root.
func subdirectories(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// copyDir recursively copies a directory tree.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file, preserving its mode.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
