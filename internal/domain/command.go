// Package domain holds the core types of the documentation generator:
// slash commands, execution results, diagnostics, and configuration.
// The package has no dependencies on the rest of the module.
package domain

import "time"

// SlashCommand is a request file written into the commands directory
// for an external tool to pick up. The command is considered executed
// once a file appears at OutputPath.
type SlashCommand struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Content    string            `json:"content"`
	FilePath   string            `json:"file_path"`
	OutputPath string            `json:"output_path"`
	CreatedAt  time.Time         `json:"created_at"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// CommandResult is the settled outcome of waiting for a command's
// output artifact. Every wait produces exactly one result; failures
// and timeouts are carried in Error with Success false, never as a
// Go error.
type CommandResult struct {
	Success     bool              `json:"success"`
	Content     string            `json:"content,omitempty"`
	OutputPath  string            `json:"output_path,omitempty"`
	Error       string            `json:"error,omitempty"`
	DurationMS  int64             `json:"duration_ms"`
	CommandID   string            `json:"command_id"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Diagnostics *Diagnostics      `json:"diagnostics,omitempty"`
}

// Diagnostics is a point-in-time snapshot of a command's filesystem
// state, collected fresh at every settlement and on demand.
type Diagnostics struct {
	CommandID     string    `json:"command_id"`
	CommandPath   string    `json:"command_path"`
	CreatedAt     time.Time `json:"created_at"`
	OutputPath    string    `json:"output_path"`
	OutputExists  bool      `json:"output_exists"`
	OutputSize    int64     `json:"output_size"`
	OutputModTime time.Time `json:"output_mod_time,omitempty"`
	Version       string    `json:"version,omitempty"`
}

// ExecutionSummary pairs a command with its result for the history log.
type ExecutionSummary struct {
	Command    SlashCommand  `json:"command"`
	Result     CommandResult `json:"result"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// ExecuteOptions tweaks a single execution.
type ExecuteOptions struct {
	// SkipExecution writes the command file but does not wait for
	// output; the result reports success immediately.
	SkipExecution bool
	// Timeout overrides the configured wait deadline when positive.
	// An expired deadline settles as a timed-out result, the same as
	// the configured one.
	Timeout time.Duration
}

// CloneMetadata returns a shallow copy of m, or nil when m is empty.
func CloneMetadata(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
