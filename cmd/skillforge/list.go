package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/openclaw/skillforge/pkg/presenter"
	"github.com/openclaw/skillforge/pkg/skills"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills under the skills root",
	Long:  `List all skills under the configured skills root with their names, descriptions, and directory paths.`,
	Run: func(_ *cobra.Command, _ []string) {
		runList()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList() {
	discovery := skills.NewDiscovery(skillsLayout())

	names, err := discovery.ListSkillNames()
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	if len(names) == 0 {
		presenter.Info("No skills found")
		return
	}

	all, err := discovery.DiscoverSkills()
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t---------\t-----------")

	for _, name := range names {
		skill := all[name]
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.Name, skill.Directory, description)
	}
	tw.Flush()
}
