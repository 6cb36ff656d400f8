// Package skills implements the OpenClaw skill package model. A skill is a
// directory containing a SKILL.md document (YAML frontmatter plus a Markdown
// body) and a scripts directory holding the skill's executable actions.
package skills

import (
	"strings"
	"unicode"
)

// SkillFileName is the metadata document every skill directory must contain.
const SkillFileName = "SKILL.md"

// Skill represents a skill loaded from disk.
type Skill struct {
	Name        string    // Unique name from frontmatter
	Description string    // Brief description from frontmatter
	Directory   string    // Full path to the skill directory
	Content     string    // Body of SKILL.md, frontmatter stripped
	Metadata    *Metadata // OpenClaw metadata, nil when absent or malformed
}

// Metadata is the `metadata` frontmatter field understood by OpenClaw.
type Metadata struct {
	Openclaw Openclaw `yaml:"openclaw"`
}

// Openclaw holds the harness-facing presentation and requirements of a skill.
type Openclaw struct {
	Emoji    string   `yaml:"emoji"`
	Requires Requires `yaml:"requires"`
}

// Requires lists external binaries and environment variables a skill needs.
type Requires struct {
	Bins []string `yaml:"bins"`
	Env  []string `yaml:"env"`
}

// DefaultMetadata returns the metadata written into freshly scaffolded skills:
// the sparkle emoji and empty requirement lists.
func DefaultMetadata() Metadata {
	return Metadata{
		Openclaw: Openclaw{
			Emoji: "✨",
			Requires: Requires{
				Bins: []string{},
				Env:  []string{},
			},
		},
	}
}

// DisplayTitle converts a skill name into its human-readable document title:
// hyphens become spaces and each word is capitalized.
func DisplayTitle(name string) string {
	return titleize(name, '-')
}

// titleize splits s on sep, capitalizes the first rune of each word and
// lowercases the rest.
func titleize(s string, sep rune) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == sep || r == ' '
	})
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
