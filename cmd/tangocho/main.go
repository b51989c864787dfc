package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/tangocho/internal/cli"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command with all subcommands
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
