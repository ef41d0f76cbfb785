package commands

// Default limits
const (
	DefaultHistoryLimit = 20

	// TimestampFormat is used for all rendered timestamps.
	TimestampFormat = "2006-01-02 15:04:05"
)

// Error messages
const (
	ErrExecutorUnavailable     = "executor service unavailable"
	ErrDoctorUnavailable       = "doctor service unavailable"
	ErrHistoryUnavailable      = "history store unavailable"
	ErrTemplateManagerMissing  = "template manager unavailable"
	ErrCommandManagerMissing   = "command manager unavailable"
	ErrTemplateNameRequired    = "template name required"
	ErrMalformedVariableAssign = "variables must be key=value"
)

// Informational messages
const (
	MsgNoActiveCommands  = "No active commands."
	MsgNoHistoryRecorded = "No history recorded yet."
	MsgNoTemplatesFound  = "No templates found."
	MsgCleanupDone       = "Cleanup complete."
	MsgHistoryCleared    = "History cleared."
)
