package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the client version
const Version = "0.3.1"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fieldtask v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
