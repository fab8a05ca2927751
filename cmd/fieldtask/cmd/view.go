package cmd

import (
	"github.com/spf13/cobra"

	"fieldtask/internal/core/log"
	"fieldtask/internal/journal"
	"fieldtask/internal/lang"
	"fieldtask/internal/tui/taskview"
)

var viewCmd = &cobra.Command{
	Use:   "view <task-id>",
	Short: "Open the task detail view",
	Long: `Opens the interactive task detail view for one task.

The view shows the work order and lets the technician set the arrival
time, change the completion status, edit notes and attach files. Edits
are saved to the backend field by field.

Examples:
  fieldtask view 86c2w1abc
  fieldtask view --backend http://192.168.1.20:7071/api 86c2w1abc`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load config", err)
		return err
	}

	logger := newLogger(cfg)
	client := newClient(cfg)

	// The journal is best-effort; the view runs without it.
	var recorder taskview.Recorder
	if j, err := journal.Open(cfg.Journal.Path); err != nil {
		logger.WarnWithErr("journal unavailable", err, log.Fields{"path": cfg.Journal.Path})
	} else {
		defer j.Close()
		recorder = j
	}

	return taskview.Run(taskview.Config{
		TaskID:  args[0],
		Backend: client,
		Logger:  logger,
		Langs:   lang.NewStore(lang.DefaultDir()),
		Journal: recorder,
		Timeout: cfg.Backend.Timeout(),
	})
}
