// Package ports defines the interfaces between the application core
// and its adapters, following the ports-and-adapters layering: the
// executor service depends on these abstractions, the infrastructure
// layer provides the implementations.
package ports

import (
	"context"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.docgen/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ContentGenerator renders a slash command from a template. It is the
// collaborator the hand-off protocol treats as external: the executor
// validates its input and places its output, but never interprets the
// rendered text.
type ContentGenerator interface {
	Generate(context.Context, domain.GenerationContext) (domain.GeneratedCommand, error)
}

// TemplateSource exposes the available templates for listing and lookup.
type TemplateSource interface {
	List(context.Context) ([]domain.Template, error)
	Get(ctx context.Context, name string) (domain.Template, error)
}

// HistoryRepository persists execution summaries.
type HistoryRepository interface {
	Save(domain.ExecutionSummary) error
	// Records returns summaries, newest first. A positive limit caps
	// the result; a non-empty search filters on command name and id.
	Records(limit int, search string) ([]domain.ExecutionSummary, error)
	Clear() error
	ExportJSON(dest string) error
}

// Logger provides leveled logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
