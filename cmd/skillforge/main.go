package main

import (
	"fmt"
	"os"

	"github.com/openclaw/skillforge/pkg/logger"
	"github.com/openclaw/skillforge/pkg/presenter"
	"github.com/openclaw/skillforge/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLFORGE")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillforge")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	viper.SetDefault("skills_dir", "skills")
	viper.SetDefault("hub_bin", "clawhub")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "fmt")
}

var rootCmd = &cobra.Command{
	Use:   "skillforge",
	Short: "Scaffold and manage OpenClaw skills",
	Long: `Skillforge scaffolds OpenClaw skill packages and manages them through the
clawhub registry.

A skill is a directory under the skills root containing a SKILL.md document
(YAML frontmatter plus a Markdown body) and a scripts directory of executable
actions.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

// skillsLayout resolves the configured skills root into a path layout.
func skillsLayout() skills.Layout {
	return skills.NewLayout(viper.GetString("skills_dir"))
}

func main() {
	rootCmd.PersistentFlags().String("skills-dir", "", "skills root directory (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (fmt, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	viper.BindPFlag("skills_dir", rootCmd.PersistentFlags().Lookup("skills-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	cobra.OnInitialize(func() {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		}
		logger.SetLogFormat(viper.GetString("log_format"))

		if quiet, err := rootCmd.PersistentFlags().GetBool("quiet"); err == nil {
			presenter.SetQuiet(quiet)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
