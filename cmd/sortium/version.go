package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sortium"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sortium",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sortium version %s\n", strings.TrimSpace(sortium.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
