package target

import (
	"os"
	"path/filepath"

	"github.com/skillstack/skillsync/internal/errors"
)

// SourceRoot resolves the directory containing installable skills.
// With an override it uses that path directly; otherwise the root is
// derived from the running binary's install location, on the
// assumption that skillsync lives in a tool directory directly under
// the skills repository (<repo>/skills-manager/skillsync).
func SourceRoot(override string) (string, error) {
	path := override
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", errors.Wrap(errors.CodeConfigSourceMissing, "could not locate the skillsync binary", err)
		}
		exe, err = filepath.EvalSymlinks(exe)
		if err != nil {
			return "", errors.Wrap(errors.CodeConfigSourceMissing, "could not resolve the skillsync binary path", err)
		}
		path = filepath.Dir(filepath.Dir(exe))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.ConfigSourceMissing(path)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", errors.ConfigSourceMissing(abs)
	}

	return abs, nil
}
