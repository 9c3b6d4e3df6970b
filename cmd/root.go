package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bankpilot/bankpilot/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "bankpilot",
	Short: "Terminal banking assistant",
	Long:  `BankPilot is a terminal front end for an intent-driven banking assistant.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the assistant application
		application, err := app.NewApplication()
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
