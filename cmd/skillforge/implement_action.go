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

var implementActionCmd = &cobra.Command{
	Use:   "implement-action",
	Short: "Add an action to an existing skill",
	Long: `Add a named action to an existing skill: the action's code is written to
an executable script in the skill's scripts directory and a documentation
block is appended to SKILL.md.

The script's extension (.py, .js, or .sh) is inferred from the leading content
of the code. Writing the script is the critical path; a SKILL.md update
failure is reported as a warning and does not fail the command.

Examples:
  skillforge implement-action --skill pdf-tools --action merge_pages \
    --description "Merge PDFs into one file" --code "$(cat merge.py)"`,
	Run: func(cmd *cobra.Command, _ []string) {
		skillName, _ := cmd.Flags().GetString("skill")
		actionName, _ := cmd.Flags().GetString("action")
		description, _ := cmd.Flags().GetString("description")
		code, _ := cmd.Flags().GetString("code")
		runImplementAction(cmd, skillName, actionName, description, code)
	},
}

func init() {
	implementActionCmd.Flags().String("skill", "", "Name of the existing skill")
	implementActionCmd.Flags().String("action", "", "Name of the action (e.g. 'calculate_pi')")
	implementActionCmd.Flags().String("description", "", "Description of what the action does")
	implementActionCmd.Flags().String("code", "", "Full script content, including its hashbang")
	_ = implementActionCmd.MarkFlagRequired("skill")
	_ = implementActionCmd.MarkFlagRequired("action")
	_ = implementActionCmd.MarkFlagRequired("description")
	_ = implementActionCmd.MarkFlagRequired("code")
	rootCmd.AddCommand(implementActionCmd)
}

func runImplementAction(cmd *cobra.Command, skillName, actionName, description, code string) {
	layout := skillsLayout()
	log := logger.G(cmd.Context()).WithField("skill", skillName).WithField("action", actionName)
	log.Debug("implementing action")

	result, err := skills.ImplementAction(layout, skillName, actionName, description, code)
	if err != nil {
		if errors.Is(err, skills.ErrSkillNotFound) {
			presenter.Error(err, fmt.Sprintf("Skill '%s' not found", skillName))
		} else {
			presenter.Error(err, "Failed to implement action")
		}
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Created script: %s", result.ScriptPath))

	switch {
	case result.DocSkipped:
		presenter.Warning(fmt.Sprintf("Action '%s' seems to already exist in SKILL.md. Skipping markdown update.", actionName))
	case result.DocErr != nil:
		// The script was written; the documentation step is best effort.
		presenter.Warning(fmt.Sprintf("Failed to update SKILL.md: %v", result.DocErr))
	default:
		presenter.Info(fmt.Sprintf("Updated SKILL.md for %s", skillName))
	}
}
