package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/excelenergy/cms/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excelenergy-cms",
		Short: "Excel Energy content management API",
		Long:  `Excel Energy CMS serves the marketing site content, admin panel API and visit analytics from a JSON file store.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewAdminCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
