package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/sortium/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sortium",
	Short: "Sortium walks a dialog tree, letting a language model pick the branch",
	Long: `Sortium presents the nodes of a YAML dialog graph, reads free-form answers and asks a
text-completion model which option the answer means. Running without a subcommand starts a
conversation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Optional YAML config file")
	flags.String("env-file", config.DefaultDotEnv, "Optional .env file with credentials")
	flags.String("graph", config.DefaultGraphPath, "Dialog graph YAML file")
	flags.String("template", config.DefaultTemplatePath, "Prompt decision template file")
	flags.String("agent", "", "Agent name shown before every dialog line")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.Bool("log-json", false, "Write logs as JSON")
}

// loadConfig layers explicitly set flags over the file and environment configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	envFile, _ := flags.GetString("env-file")

	cfg, err := config.Load(path, envFile)
	if err != nil {
		return nil, err
	}

	if flags.Changed("graph") {
		cfg.GraphPath, _ = flags.GetString("graph")
	}
	if flags.Changed("template") {
		cfg.TemplatePath, _ = flags.GetString("template")
	}
	if flags.Changed("agent") {
		cfg.Agent, _ = flags.GetString("agent")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.LogJSON, _ = flags.GetBool("log-json")
	}
	if flags.Lookup("metrics-addr") != nil && flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Lookup("cache") != nil && flags.Changed("cache") {
		cfg.Cache.Backend, _ = flags.GetString("cache")
	}
	if flags.Lookup("redis-url") != nil && flags.Changed("redis-url") {
		cfg.Cache.RedisURL, _ = flags.GetString("redis-url")
	}
	return cfg, cfg.Validate()
}
