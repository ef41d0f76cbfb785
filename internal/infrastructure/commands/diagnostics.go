package commands

import (
	"os"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
)

// CollectDiagnostics builds a point-in-time snapshot of the command's
// output artifact. It stats the expected path on every call; nothing
// is cached between invocations.
func CollectDiagnostics(cmd domain.SlashCommand) domain.Diagnostics {
	diag := domain.Diagnostics{
		CommandID:   cmd.ID,
		CommandPath: cmd.FilePath,
		CreatedAt:   cmd.CreatedAt,
		OutputPath:  cmd.OutputPath,
		Version:     cmd.Metadata["version"],
	}
	info, err := os.Stat(cmd.OutputPath)
	if err != nil {
		// Absent or unreadable: OutputExists stays false.
		return diag
	}
	diag.OutputExists = true
	diag.OutputSize = info.Size()
	diag.OutputModTime = info.ModTime()
	return diag
}
