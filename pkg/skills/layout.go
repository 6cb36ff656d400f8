package skills

import "path/filepath"

const scriptsDirName = "scripts"

// Layout resolves filesystem paths within a skills root directory. The root
// is always passed in explicitly (flag, env, or config) rather than derived
// from the running binary's location, so path resolution stays a pure
// function of its inputs.
type Layout struct {
	root string
}

// NewLayout returns a Layout rooted at the given skills directory.
func NewLayout(root string) Layout {
	return Layout{root: root}
}

// Root returns the skills root directory.
func (l Layout) Root() string {
	return l.root
}

// SkillDir returns the directory owned by the named skill.
func (l Layout) SkillDir(name string) string {
	return filepath.Join(l.root, name)
}

// SkillFile returns the path of the named skill's SKILL.md document.
func (l Layout) SkillFile(name string) string {
	return filepath.Join(l.root, name, SkillFileName)
}

// ScriptsDir returns the named skill's scripts directory.
func (l Layout) ScriptsDir(name string) string {
	return filepath.Join(l.root, name, scriptsDirName)
}
