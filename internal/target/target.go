// Package target resolves destination skill directories for the AI
// assistants skillsync knows how to install into. Resolution is a pure
// function of the target profile, the requested scope, and the caller's
// home and working directories; it never creates anything on disk.
package target

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skillstack/skillsync/internal/errors"
)

// Scope selects between a user-global and a workspace-local destination.
type Scope string

const (
	ScopeGlobal    Scope = "global"
	ScopeWorkspace Scope = "workspace"
)

// Config describes a known assistant's skill installation layout.
type Config struct {
	// Name is the human-readable assistant name (e.g., "Open Code").
	Name string

	// GlobalPath is the user-global skills directory. A leading ~ is
	// expanded against the caller's home directory.
	GlobalPath string

	// WorkspaceMarker is the directory name searched for upward from
	// the working directory when resolving workspace scope (e.g.,
	// ".agent"). Empty means the assistant only supports global scope.
	WorkspaceMarker string

	// WorkspaceSubpath is the path under the marker directory where
	// skills live (e.g., "skills").
	WorkspaceSubpath string
}

// KnownTargets maps target names to their configuration.
// These are the built-in assistants skillsync knows how to install
// skills for. Config files may register additional entries.
var KnownTargets = map[string]Config{
	"opencode": {
		Name:       "Open Code",
		GlobalPath: "~/.config/opencode/skills",
	},
	"antigravity": {
		Name:             "Antigravity",
		GlobalPath:       "~/.gemini/antigravity/skills",
		WorkspaceMarker:  ".agent",
		WorkspaceSubpath: "skills",
	},
}

// ListKnownTargets returns the names of all known targets in sorted order.
func ListKnownTargets() []string {
	targets := make([]string, 0, len(KnownTargets))
	for name := range KnownTargets {
		targets = append(targets, name)
	}
	sort.Strings(targets)
	return targets
}

// Register adds or replaces a target configuration. Used to merge
// config-file-defined targets into the built-in set.
func Register(name string, cfg Config) {
	KnownTargets[name] = cfg
}

// Resolution is the outcome of resolving a (target, scope) pair.
type Resolution struct {
	Target     string
	Scope      Scope  // effective scope after any downgrade
	DestRoot   string // absolute destination skills directory
	Downgraded bool   // workspace was requested but target is global-only
}

// Resolve maps a (target, scope) pair to a destination skills root.
// home and cwd are passed explicitly so resolution stays testable; the
// only filesystem access is the read-only workspace marker search.
func Resolve(targetName string, scope Scope, home, cwd string) (Resolution, error) {
	cfg, ok := KnownTargets[targetName]
	if !ok {
		return Resolution{}, errors.TargetUnknown(targetName, ListKnownTargets())
	}

	res := Resolution{Target: targetName, Scope: scope}

	if scope == ScopeWorkspace && cfg.WorkspaceMarker == "" {
		res.Scope = ScopeGlobal
		res.Downgraded = true
	}

	if res.Scope == ScopeWorkspace {
		res.DestRoot = resolveWorkspace(cfg, cwd)
		return res, nil
	}

	res.Scope = ScopeGlobal
	res.DestRoot = ExpandPath(cfg.GlobalPath, home)
	return res, nil
}

// resolveWorkspace searches upward from cwd for the marker directory.
// If an ancestor contains it, skills live under that marker; otherwise
// fall back to the marker path under cwd itself.
func resolveWorkspace(cfg Config, cwd string) string {
	dir := cwd
	for {
		marker := filepath.Join(dir, cfg.WorkspaceMarker)
		if info, err := os.Stat(marker); err == nil && info.IsDir() {
			return filepath.Join(marker, cfg.WorkspaceSubpath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return filepath.Join(cwd, cfg.WorkspaceMarker, cfg.WorkspaceSubpath)
}

// ExpandPath expands ~ at the start of a path against the given home
// directory. Paths without a leading ~ are returned unchanged.
func ExpandPath(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
