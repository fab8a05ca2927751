package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <task-id>",
	Short: "Print the work-order PDF URL",
	Long: `Prints the URL of the work-order PDF for a task. The PDF is
served by the backend and can be opened in any browser.

Example:
  fieldtask pdf 86c2w1abc`,
	Args: cobra.ExactArgs(1),
	RunE: runPDF,
}

func init() {
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load config", err)
		return err
	}

	fmt.Println(newClient(cfg).PDFURL(args[0]))
	return nil
}
