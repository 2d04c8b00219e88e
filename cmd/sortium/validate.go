package main

import (
	"fmt"

	"github.com/aretw0/sortium/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dialog graph for consistency",
	Long: `Crawls the graph starting from the 'start' node and reports options pointing to missing
nodes, unreachable nodes and dead ends. 'run' never performs these checks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cli.Validate(cfg, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
