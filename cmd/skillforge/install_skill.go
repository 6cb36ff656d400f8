package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/openclaw/skillforge/pkg/hub"
	"github.com/openclaw/skillforge/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install a skill from the clawhub registry",
	Long: `Install a skill package by delegating to the clawhub CLI.

Examples:
  skillforge install-skill --slug pdf-tools
  skillforge install-skill --slug openclaw/pdf-tools`,
	Run: func(cmd *cobra.Command, _ []string) {
		slug, _ := cmd.Flags().GetString("slug")
		runInstallSkill(cmd, slug)
	},
}

func init() {
	installSkillCmd.Flags().String("slug", "", "Skill slug or URL")
	_ = installSkillCmd.MarkFlagRequired("slug")
	rootCmd.AddCommand(installSkillCmd)
}

func runInstallSkill(cmd *cobra.Command, slug string) {
	client := hub.NewClient(viper.GetString("hub_bin"))

	presenter.Info(fmt.Sprintf("Installing skill: %s...", slug))

	out, err := client.Install(cmd.Context(), slug)
	if err != nil {
		if errors.Is(err, hub.ErrHubNotFound) {
			presenter.Error(err, "Is the clawhub CLI installed in the OpenClaw container?")
		} else {
			presenter.Error(err, "Failed to install skill")
		}
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Skill '%s' installed successfully.", slug))
	if out = strings.TrimSpace(out); out != "" {
		presenter.Info(out)
	}
}
