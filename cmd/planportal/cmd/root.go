package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planportal",
	Short: "Planportal is the training plan portal backend",
	Long: `Authentication and plan sheet lookup service for the training plan portal.
Configuration is read from the environment, optionally via a .env file.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
