package main

import (
	"fmt"
	"os"

	"github.com/openclaw/skillforge/pkg/logger"
	"github.com/openclaw/skillforge/pkg/presenter"
	"github.com/openclaw/skillforge/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var createSkillCmd = &cobra.Command{
	Use:   "create-skill",
	Short: "Scaffold a new skill",
	Long: `Scaffold a new OpenClaw skill: the skill directory, its scripts
subdirectory, and a SKILL.md with default metadata and an empty Actions
section.

Examples:
  skillforge create-skill --name pdf-tools --description "Work with PDF files"
  skillforge create-skill --name release-notes --description "Draft release notes" --skills-dir ./skills`,
	Run: func(cmd *cobra.Command, _ []string) {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		runCreateSkill(cmd, name, description)
	},
}

func init() {
	createSkillCmd.Flags().String("name", "", "Name of the skill (folder name)")
	createSkillCmd.Flags().String("description", "", "Description of the skill")
	_ = createSkillCmd.MarkFlagRequired("name")
	_ = createSkillCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(createSkillCmd)
}

func runCreateSkill(cmd *cobra.Command, name, description string) {
	layout := skillsLayout()
	log := logger.G(cmd.Context()).WithField("skill", name)
	log.WithField("dir", layout.SkillDir(name)).Debug("scaffolding skill")

	if err := skills.CreateSkill(layout, name, description); err != nil {
		if errors.Is(err, skills.ErrSkillExists) {
			presenter.Error(err, fmt.Sprintf("Skill '%s' already exists", name))
		} else {
			presenter.Error(err, "Failed to create skill")
		}
		os.Exit(1)
	}

	presenter.Info(fmt.Sprintf("Created directory: %s", layout.SkillDir(name)))
	presenter.Info(fmt.Sprintf("Created directory: %s", layout.ScriptsDir(name)))
	presenter.Success(fmt.Sprintf("Created SKILL.md for %s", name))
}
