package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fieldtask/internal/api"
	"fieldtask/internal/core/config"
	"fieldtask/internal/core/log"
)

var (
	cfgFile    string
	verbose    bool
	backendURL string
)

var rootCmd = &cobra.Command{
	Use:   "fieldtask",
	Short: "FieldTask - technician task client",
	Long: `FieldTask is a terminal client for field technicians. It shows a
single maintenance task from the ClickUp-backed FieldTask backend and
lets the technician record their arrival time, completion status, notes
and photo attachments on site.

Commands:
  view     - open the task detail view
  pdf      - print the work-order PDF URL
  journal  - list locally journaled actions
  version  - print the client version`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.fieldtask/config.toml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "backend base URL (overrides config)")
}

// loadConfig loads the effective configuration for a command run
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if candidate := defaultConfigPath(); candidate != "" {
			path = candidate
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// defaultConfigPath returns ~/.fieldtask/config.toml when it exists
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := home + "/.fieldtask/config.toml"
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// newLogger builds the file logger; the TUI owns the terminal, so log
// output never goes to stdout.
func newLogger(cfg *config.Config) *log.Logger {
	output, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return log.NewWithConfig(log.Config{
			Level:  log.ParseLevel(cfg.Log.Level),
			Format: logFormat(cfg.Log.Format),
			Output: os.Stderr,
			Name:   "fieldtask",
		})
	}
	return log.NewWithConfig(log.Config{
		Level:  log.ParseLevel(cfg.Log.Level),
		Format: logFormat(cfg.Log.Format),
		Output: output,
		Name:   "fieldtask",
	})
}

func logFormat(name string) log.Format {
	if name == "text" {
		return log.FormatText
	}
	return log.FormatJSON
}

// newClient builds the backend API client from config
func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(api.Config{
		BaseURL:       cfg.Backend.BaseURL,
		Timeout:       cfg.Backend.Timeout(),
		UploadTimeout: cfg.Backend.UploadTimeout(),
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
