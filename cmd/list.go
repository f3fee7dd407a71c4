package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list what organize would see",
	Long:  `list what organize would see`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
