package skills

import (
	"bytes"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	yamlv2 "gopkg.in/yaml.v2"
	"gopkg.in/yaml.v3"
)

// Discovery enumerates and loads skills from a skills root directory.
type Discovery struct {
	layout Layout
}

// NewDiscovery creates a Discovery over the given layout.
func NewDiscovery(layout Layout) *Discovery {
	return &Discovery{layout: layout}
}

// DiscoverSkills loads every valid skill under the root. Directories without
// a parseable SKILL.md are skipped. A missing root yields an empty map.
func (d *Discovery) DiscoverSkills() (map[string]*Skill, error) {
	found := make(map[string]*Skill)

	entries, err := os.ReadDir(d.layout.Root())
	if err != nil {
		if os.IsNotExist(err) {
			return found, nil
		}
		return nil, errors.Wrap(err, "failed to read skills root")
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		skill, err := LoadSkill(d.layout.SkillFile(entry.Name()))
		if err != nil {
			continue
		}

		skill.Directory = d.layout.SkillDir(entry.Name())
		if _, exists := found[skill.Name]; !exists {
			found[skill.Name] = skill
		}
	}

	return found, nil
}

// GetSkill returns a specific skill by name.
func (d *Discovery) GetSkill(name string) (*Skill, error) {
	found, err := d.DiscoverSkills()
	if err != nil {
		return nil, err
	}

	skill, exists := found[name]
	if !exists {
		return nil, errors.Wrapf(ErrSkillNotFound, "%q", name)
	}

	return skill, nil
}

// ListSkillNames returns the sorted names of all available skills.
func (d *Discovery) ListSkillNames() ([]string, error) {
	found, err := d.DiscoverSkills()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// LoadSkill parses a single SKILL.md file. The frontmatter must carry a name
// and a description; the OpenClaw metadata block is decoded when present.
func LoadSkill(path string) (*Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)

	if name == "" {
		return nil, errors.New("skill name is required in frontmatter")
	}
	if description == "" {
		return nil, errors.New("skill description is required in frontmatter")
	}

	return &Skill{
		Name:        name,
		Description: description,
		Content:     extractBodyContent(string(content)),
		Metadata:    decodeMetadata(metaData["metadata"]),
	}, nil
}

// decodeMetadata converts the raw frontmatter metadata value into a Metadata
// struct. Goldmark-meta hands back yaml.v2 maps, so the value is round-tripped
// through YAML. Malformed metadata yields nil rather than an error.
func decodeMetadata(raw interface{}) *Metadata {
	if raw == nil {
		return nil
	}

	encoded, err := yamlv2.Marshal(raw)
	if err != nil {
		return nil
	}

	var m Metadata
	if err := yaml.Unmarshal(encoded, &m); err != nil {
		return nil
	}

	return &m
}

// extractBodyContent removes the YAML frontmatter block and returns the body.
func extractBodyContent(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
