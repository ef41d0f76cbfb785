// Package executor orchestrates the full generation lifecycle: render
// a command from a template, place it for pickup, wait for the output
// artifact, and record the outcome.
package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/infrastructure/commands"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/ports"
)

// Service drives command generation and execution end-to-end.
type Service struct {
	Generator   ports.ContentGenerator
	Manager     *commands.Manager
	HistoryRepo ports.HistoryRepository
	Logger      ports.Logger
	Config      domain.CommandSettings

	mu        sync.Mutex
	summaries []domain.ExecutionSummary
}

// Preview renders a command without touching the filesystem.
func (s *Service) Preview(ctx context.Context, gen domain.GenerationContext) (domain.GeneratedCommand, error) {
	if err := s.checkDeps(); err != nil {
		return domain.GeneratedCommand{}, err
	}
	if err := validate(gen); err != nil {
		return domain.GeneratedCommand{}, err
	}
	return s.Generator.Generate(ctx, gen)
}

// Prepare renders a command and writes it into the commands directory
// without waiting for output.
func (s *Service) Prepare(ctx context.Context, gen domain.GenerationContext) (domain.SlashCommand, error) {
	if err := s.checkDeps(); err != nil {
		return domain.SlashCommand{}, err
	}
	if err := validate(gen); err != nil {
		return domain.SlashCommand{}, err
	}
	rendered, err := s.Generator.Generate(ctx, gen)
	if err != nil {
		return domain.SlashCommand{}, fmt.Errorf("generate command: %w", err)
	}
	return s.Manager.CreateCommand(ctx, rendered)
}

// Execute prepares a command and resolves its result. Creation
// problems surface as errors; once the command file exists every
// outcome, including timeout, arrives as a CommandResult.
func (s *Service) Execute(ctx context.Context, gen domain.GenerationContext, opts domain.ExecuteOptions) (domain.CommandResult, error) {
	cmd, err := s.Prepare(ctx, gen)
	if err != nil {
		return domain.CommandResult{}, err
	}

	var res domain.CommandResult
	if opts.SkipExecution {
		diag := commands.CollectDiagnostics(cmd)
		res = domain.CommandResult{
			Success:     true,
			Content:     fmt.Sprintf("command %s generated but execution skipped (%s)", cmd.ID, cmd.FilePath),
			OutputPath:  cmd.OutputPath,
			CommandID:   cmd.ID,
			Metadata:    domain.CloneMetadata(cmd.Metadata),
			Diagnostics: &diag,
		}
	} else {
		res = s.Manager.ExecuteCommand(ctx, cmd, opts.Timeout)
		res = enrich(res, cmd)
	}

	s.record(cmd, res)

	if s.Config.CleanupAfterExecution {
		s.Manager.Cleanup(cmd.ID)
	}
	return res, nil
}

// Cleanup removes one tracked command, or all of them when id is empty.
func (s *Service) Cleanup(id string) {
	if err := s.checkDeps(); err != nil {
		return
	}
	s.Manager.Cleanup(id)
}

// Diagnostics returns a fresh filesystem snapshot for a tracked command.
func (s *Service) Diagnostics(id string) (domain.Diagnostics, error) {
	if err := s.checkDeps(); err != nil {
		return domain.Diagnostics{}, err
	}
	return s.Manager.Diagnostics(id)
}

// History returns the summaries recorded by this process, oldest first.
// Callers receive a copy; mutating it cannot corrupt the log.
func (s *Service) History() []domain.ExecutionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ExecutionSummary, len(s.summaries))
	copy(out, s.summaries)
	return out
}

func (s *Service) record(cmd domain.SlashCommand, res domain.CommandResult) {
	summary := domain.ExecutionSummary{
		Command:    cmd,
		Result:     res,
		RecordedAt: time.Now(),
	}
	s.mu.Lock()
	s.summaries = append(s.summaries, summary)
	s.mu.Unlock()

	if s.HistoryRepo == nil {
		return
	}
	if err := s.HistoryRepo.Save(summary); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{
			"id":    cmd.ID,
			"error": err.Error(),
		})
	}
}

// enrich fills identity fields the watcher may have left empty so every
// recorded result can be traced back to its command.
func enrich(res domain.CommandResult, cmd domain.SlashCommand) domain.CommandResult {
	if res.CommandID == "" {
		res.CommandID = cmd.ID
	}
	if res.OutputPath == "" {
		res.OutputPath = cmd.OutputPath
	}
	if res.Metadata == nil {
		res.Metadata = domain.CloneMetadata(cmd.Metadata)
	}
	if res.Diagnostics == nil {
		diag := commands.CollectDiagnostics(cmd)
		res.Diagnostics = &diag
	}
	return res
}

func (s *Service) checkDeps() error {
	if s.Generator == nil || s.Manager == nil || s.Logger == nil {
		return errors.New("executor.Service dependencies not satisfied")
	}
	return nil
}
