package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fieldtask/internal/journal"
)

var (
	journalTaskID string
	journalLimit  int
	journalPrune  time.Duration
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List locally journaled actions",
	Long: `Lists the actions this device has journaled locally: task loads,
field saves, uploads and translation requests. The journal never leaves
the device.

Examples:
  fieldtask journal
  fieldtask journal --task 86c2w1abc --limit 20
  fieldtask journal --prune 720h`,
	RunE: runJournal,
}

func init() {
	rootCmd.AddCommand(journalCmd)

	journalCmd.Flags().StringVar(&journalTaskID, "task", "", "only events for this task id")
	journalCmd.Flags().IntVar(&journalLimit, "limit", 50, "maximum number of events")
	journalCmd.Flags().DurationVar(&journalPrune, "prune", 0, "delete events older than this duration instead of listing")
}

func runJournal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load config", err)
		return err
	}

	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		printError("failed to open journal", err)
		return err
	}
	defer j.Close()

	ctx := context.Background()

	if journalPrune > 0 {
		deleted, err := j.Prune(ctx, journalPrune)
		if err != nil {
			printError("failed to prune journal", err)
			return err
		}
		fmt.Printf("Pruned %d events\n", deleted)
		return nil
	}

	events, err := j.List(ctx, journal.Filter{
		TaskID: journalTaskID,
		Limit:  journalLimit,
	})
	if err != nil {
		printError("failed to list journal", err)
		return err
	}

	if len(events) == 0 {
		fmt.Println("No journaled events")
		return nil
	}
	for _, event := range events {
		fmt.Printf("%s  %-14s  %-12s  %s\n",
			event.Timestamp.Local().Format("2006-01-02 15:04:05"),
			event.Type, event.TaskID, event.Message)
	}
	return nil
}
