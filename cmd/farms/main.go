package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/coffeetech/farms/internal/interfaces/cli/migrate"
	"github.com/coffeetech/farms/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "farms",
		Short: "Farms - coffee farm management service",
		Long:  `Farms manages coffee farms, their plots and the collaborators who work them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
