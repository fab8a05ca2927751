// File: config.go
// Title: Client Configuration
// Description: Loads FieldTask configuration from a TOML or YAML file with
//              environment variable overrides and sensible defaults, and
//              validates the result before the client starts.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	fterror "fieldtask/internal/core/error"
	"fieldtask/internal/util/stringx"
)

// Config is the root configuration for the FieldTask client
type Config struct {
	Backend BackendConfig `toml:"backend" yaml:"backend"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Journal JournalConfig `toml:"journal" yaml:"journal"`
}

// BackendConfig configures the connection to the FieldTask backend
type BackendConfig struct {
	BaseURL              string `toml:"base_url" yaml:"base_url"`
	TimeoutSeconds       int    `toml:"timeout_seconds" yaml:"timeout_seconds"`
	UploadTimeoutSeconds int    `toml:"upload_timeout_seconds" yaml:"upload_timeout_seconds"`
}

// LogConfig configures the client log file
type LogConfig struct {
	File   string `toml:"file" yaml:"file"`
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// JournalConfig configures the local event journal
type JournalConfig struct {
	Path string `toml:"path" yaml:"path"`
}

// Default returns the default configuration. Paths live under
// ~/.fieldtask alongside the settings file.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:              "http://localhost:7071/api",
			TimeoutSeconds:       30,
			UploadTimeoutSeconds: 120,
		},
		Log: LogConfig{
			File:   filepath.Join(homeDir(), ".fieldtask", "fieldtask.log"),
			Level:  "info",
			Format: "json",
		},
		Journal: JournalConfig{
			Path: filepath.Join(homeDir(), ".fieldtask", "journal.db"),
		},
	}
}

// Load reads configuration from path (TOML or YAML by extension), applies
// environment overrides, and validates. An empty path returns defaults
// with overrides applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if stringx.IsNotBlank(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fterror.Wrap(err, "read config file").
				WithCode(fterror.CodeEnvironmentError).
				WithOperation("config.Load").
				WithDetail("path", path)
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, cfg)
		default:
			err = toml.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fterror.Wrap(err, "parse config file").
				WithCode(fterror.CodeInvalidInput).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from FIELDTASK_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("FIELDTASK_BACKEND_URL"); stringx.IsNotBlank(v) {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("FIELDTASK_LOG_LEVEL"); stringx.IsNotBlank(v) {
		c.Log.Level = v
	}
	if v := os.Getenv("FIELDTASK_LOG_FILE"); stringx.IsNotBlank(v) {
		c.Log.File = v
	}
	if v := os.Getenv("FIELDTASK_JOURNAL_PATH"); stringx.IsNotBlank(v) {
		c.Journal.Path = v
	}
}

// Validate checks the configuration for values the client cannot run with
func (c *Config) Validate() error {
	if stringx.IsBlank(c.Backend.BaseURL) {
		return fterror.New("backend base_url must not be empty").
			WithCode(fterror.CodeValidationFailed).
			WithOperation("config.Validate")
	}
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		return fterror.New("backend base_url must be an http(s) URL").
			WithCode(fterror.CodeValidationFailed).
			WithOperation("config.Validate").
			WithDetail("base_url", c.Backend.BaseURL)
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = 30
	}
	if c.Backend.UploadTimeoutSeconds <= 0 {
		c.Backend.UploadTimeoutSeconds = 120
	}
	return nil
}

// Timeout returns the request timeout as a duration
func (c *BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// UploadTimeout returns the upload timeout as a duration
func (c *BackendConfig) UploadTimeout() time.Duration {
	return time.Duration(c.UploadTimeoutSeconds) * time.Second
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
