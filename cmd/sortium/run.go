package main

import (
	"github.com/aretw0/sortium/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive conversation",
	Long:  `Loads the dialog graph and prompt template and runs one conversation on the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		return cli.RunSession(cmd.Context(), cli.RunOptions{
			Config: cfg,
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
			Quiet:  quiet,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, cmd := range []*cobra.Command{runCmd, rootCmd} {
		cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
		cmd.Flags().String("cache", "", "Classification cache backend: none, memory, redis")
		cmd.Flags().String("redis-url", "", "Redis URL for the redis cache backend")
		cmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
	}

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
}
