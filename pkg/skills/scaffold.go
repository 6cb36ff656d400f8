package skills

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrSkillExists indicates that a skill directory with the requested name is
// already present under the skills root. Detect it with errors.Is.
var ErrSkillExists = errors.New("skill already exists")

// actionsHeading is the SKILL.md section that documents the skill's actions.
const actionsHeading = "## Actions"

// frontmatter is the YAML block at the top of a scaffolded SKILL.md. Metadata
// is rendered in flow style to keep the document header compact.
type frontmatter struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Metadata    Metadata `yaml:"metadata,flow"`
}

// CreateSkill scaffolds a new skill under the layout's root: the skill
// directory, its scripts subdirectory, and a SKILL.md with default OpenClaw
// metadata and an empty Actions section.
//
// Creation is not atomic: a failure after the directories are made can leave
// an incomplete skill behind. The existence check prevents clobbering a
// pre-existing skill, but concurrent invocations against the same name race.
func CreateSkill(layout Layout, name, description string) error {
	if name == "" {
		return errors.New("skill name is required")
	}
	if description == "" {
		return errors.New("skill description is required")
	}

	skillDir := layout.SkillDir(name)
	if _, err := os.Stat(skillDir); err == nil {
		return errors.Wrapf(ErrSkillExists, "%q at %s", name, skillDir)
	}

	if err := os.MkdirAll(layout.ScriptsDir(name), 0o755); err != nil {
		return errors.Wrap(err, "failed to create skill directories")
	}

	doc, err := renderSkillFile(name, description)
	if err != nil {
		return err
	}

	if err := os.WriteFile(layout.SkillFile(name), []byte(doc), 0o644); err != nil {
		return errors.Wrap(err, "failed to write SKILL.md")
	}

	return nil
}

// renderSkillFile produces the initial SKILL.md content for a new skill.
func renderSkillFile(name, description string) (string, error) {
	fm, err := yaml.Marshal(frontmatter{
		Name:        name,
		Description: description,
		Metadata:    DefaultMetadata(),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to render frontmatter")
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(fm)
	sb.WriteString("---\n\n")
	sb.WriteString(fmt.Sprintf("# %s\n\n", DisplayTitle(name)))
	sb.WriteString(description)
	sb.WriteString("\n\n")
	sb.WriteString(actionsHeading)
	sb.WriteString("\n")

	return sb.String(), nil
}
