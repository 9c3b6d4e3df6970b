package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankpilot/bankpilot/internal/routes"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the merged route table",
	Long:  `Print the navigation route table after merging static and intent routes, in table order.`,
	Run: func(cmd *cobra.Command, args []string) {
		catalog := routes.Load()
		for _, r := range catalog.All() {
			line := fmt.Sprintf("%-32s %-18s tab=%s", r.Path, r.Component, r.Tab)
			if r.IntentID != "" {
				line += "  intent=" + r.IntentID
			}
			if r.RedirectTo != "" {
				line += "  redirect=" + r.RedirectTo
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
