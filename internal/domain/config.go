package domain

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config mirrors ~/.docgen/config.yaml.
type Config struct {
	ConfigFormatVersion string           `yaml:"config_format_version"`
	Commands            CommandSettings  `yaml:"commands"`
	Templates           TemplateSettings `yaml:"templates"`
	History             HistorySettings  `yaml:"history"`
}

// CommandSettings controls the hand-off protocol: where command files
// are written, where output is expected, and how long to wait for it.
type CommandSettings struct {
	// CommandsDir is where slash command files are written. Required.
	CommandsDir string `yaml:"commands_dir"`
	// OutputDir is the default directory for expected output artifacts.
	OutputDir string `yaml:"output_dir"`
	// TempDir holds scratch files.
	TempDir string `yaml:"temp_dir"`
	// MaxRetries is recognized for forward compatibility; the watcher
	// never consults it. Retrying a timed-out wait is a caller concern.
	MaxRetries int `yaml:"max_retries"`
	// CommandTimeoutMS bounds how long a wait stays pending.
	CommandTimeoutMS int `yaml:"command_timeout_ms"`
	// PollIntervalMS is the read-attempt cadence used as a safety net
	// alongside the directory watch, and exclusively when the watch
	// cannot be established.
	PollIntervalMS int `yaml:"poll_interval_ms"`
	// CleanupAfterExecution removes the command file and registry
	// entry once a result (of either outcome) has been produced.
	CleanupAfterExecution bool `yaml:"cleanup_after_execution"`
	// CommandFileMode is the octal permission for command files, e.g. "0600".
	CommandFileMode string `yaml:"command_file_mode"`
}

// TemplateSettings configures template discovery.
type TemplateSettings struct {
	TemplatesDir string `yaml:"templates_dir"`
}

// HistorySettings selects the execution history backend.
type HistorySettings struct {
	// Backend is "sqlite" (default) or "file" for a jsonl log.
	Backend string `yaml:"backend"`
}

// Default timing values applied when the config leaves them unset.
const (
	DefaultCommandTimeoutMS = 120000
	DefaultPollIntervalMS   = 500
)

// Timeout returns the configured command timeout as a duration.
func (c CommandSettings) Timeout() time.Duration {
	ms := c.CommandTimeoutMS
	if ms <= 0 {
		ms = DefaultCommandTimeoutMS
	}
	return time.Duration(ms) * time.Millisecond
}

// PollInterval returns the read-attempt polling cadence.
func (c CommandSettings) PollInterval() time.Duration {
	ms := c.PollIntervalMS
	if ms <= 0 {
		ms = DefaultPollIntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}

// FileMode parses the octal command_file_mode, defaulting to 0600
// when unset or unparseable.
func (c CommandSettings) FileMode() os.FileMode {
	raw := strings.TrimPrefix(strings.TrimSpace(c.CommandFileMode), "0o")
	if raw == "" {
		return 0o600
	}
	mode, err := strconv.ParseUint(raw, 8, 32)
	if err != nil {
		return 0o600
	}
	return os.FileMode(mode)
}
