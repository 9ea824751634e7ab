// Package skill reads optional skill metadata. Skill directories are
// copied as opaque trees; the only file skillsync ever looks inside is
// SKILL.md, whose YAML frontmatter supplies a description for listings.
package skill

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const metaFileName = "SKILL.md"

// Meta is the YAML frontmatter of a SKILL.md file.
type Meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ReadMeta parses the frontmatter of dir/SKILL.md. A missing file,
// missing frontmatter, or malformed YAML yields a zero Meta — metadata
// is decoration, never a requirement.
func ReadMeta(dir string) Meta {
	data, err := os.ReadFile(filepath.Join(dir, metaFileName))
	if err != nil {
		return Meta{}
	}

	block, ok := frontmatter(string(data))
	if !ok {
		return Meta{}
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return Meta{}
	}
	return meta
}

// frontmatter extracts the block between leading "---" delimiters.
func frontmatter(content string) (string, bool) {
	content = strings.TrimPrefix(content, "\uFEFF")
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", false
	}
	var b strings.Builder
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "---" {
			return b.String(), true
		}
		b.WriteString(line)
	}
	return "", false
}
