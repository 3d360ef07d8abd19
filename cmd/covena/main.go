package main

import (
	"os"

	"github.com/spf13/cobra"

	"covena/internal/interfaces/cli/migrate"
	"covena/internal/interfaces/cli/server"
	"covena/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "covena",
		Short:   "Covena - loan covenant compliance and alert lifecycle engine",
		Long:    `Covena monitors loan covenant compliance across bank portfolios, evaluates covenant health against reported financial metrics, and manages the resulting alert lifecycle.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
