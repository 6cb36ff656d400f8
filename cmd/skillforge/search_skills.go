package main

import (
	"os"

	"github.com/openclaw/skillforge/pkg/hub"
	"github.com/openclaw/skillforge/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var searchSkillsCmd = &cobra.Command{
	Use:   "search-skills",
	Short: "Search the clawhub registry for skills",
	Long: `Search for skill packages by delegating to the clawhub CLI and relaying
its output.

Examples:
  skillforge search-skills --query "pdf"
  skillforge search-skills --query "calendar sync"`,
	Run: func(cmd *cobra.Command, _ []string) {
		query, _ := cmd.Flags().GetString("query")
		runSearchSkills(cmd, query)
	},
}

func init() {
	searchSkillsCmd.Flags().String("query", "", "Search query")
	_ = searchSkillsCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(searchSkillsCmd)
}

func runSearchSkills(cmd *cobra.Command, query string) {
	client := hub.NewClient(viper.GetString("hub_bin"))

	out, err := client.Search(cmd.Context(), query)
	if err != nil {
		if errors.Is(err, hub.ErrHubNotFound) {
			presenter.Error(err, "Is the clawhub CLI installed in the OpenClaw container?")
		} else {
			presenter.Error(err, "Failed to search skills")
		}
		os.Exit(1)
	}

	if out == "" {
		presenter.Info("No skills found matching your query.")
		return
	}
	presenter.Info(out)
}
