package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/pkg/filesystem"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/ports"
)

// Manager implements the hand-off protocol surface: it places command
// files, tracks them in the registry, and resolves their completion
// through the watcher.
type Manager struct {
	cfg      domain.CommandSettings
	registry *Registry
	watcher  *Watcher
	log      ports.Logger
	now      func() time.Time
}

// ManagerOption customizes a Manager during construction.
type ManagerOption func(*Manager)

// WithClock overrides the clock used for ids and creation timestamps.
func WithClock(clock func() time.Time) ManagerOption {
	return func(m *Manager) {
		if clock != nil {
			m.now = clock
		}
	}
}

// NewManager validates settings and wires the registry and watcher.
func NewManager(cfg domain.CommandSettings, log ports.Logger, opts ...ManagerOption) (*Manager, error) {
	if strings.TrimSpace(cfg.CommandsDir) == "" {
		return nil, fmt.Errorf("commands: commands_dir is required")
	}
	m := &Manager{
		cfg:      cfg,
		registry: NewRegistry(log),
		watcher:  NewWatcher(log, cfg.Timeout(), cfg.PollInterval()),
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// CreateCommand writes a generated command file at a collision-free
// path and registers it. The commands directory is created on demand
// with owner-only permissions; the file mode comes from configuration.
func (m *Manager) CreateCommand(ctx context.Context, gen domain.GeneratedCommand) (domain.SlashCommand, error) {
	if err := filesystem.EnsureDirectory(m.cfg.CommandsDir, 0o700); err != nil {
		return domain.SlashCommand{}, fmt.Errorf("commands: ensure %s: %w", m.cfg.CommandsDir, err)
	}
	path := filesystem.EnsureUniqueFilePath(filepath.Join(m.cfg.CommandsDir, gen.Filename))
	if err := os.WriteFile(path, []byte(gen.Content), m.cfg.FileMode()); err != nil {
		return domain.SlashCommand{}, fmt.Errorf("commands: write %s: %w", path, err)
	}
	now := m.now()
	cmd := domain.SlashCommand{
		ID:         generateCommandID(now),
		Name:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Content:    gen.Content,
		FilePath:   path,
		OutputPath: gen.OutputPath,
		CreatedAt:  now,
		Metadata:   domain.CloneMetadata(gen.Metadata),
	}
	m.registry.Add(cmd)
	m.log.Debug("command created", map[string]interface{}{
		"id":   cmd.ID,
		"path": cmd.FilePath,
	})
	return cmd, nil
}

// ExecuteCommand waits for the command's output artifact and returns
// the terminal result. A positive timeout overrides the configured
// deadline for this wait only.
func (m *Manager) ExecuteCommand(ctx context.Context, cmd domain.SlashCommand, timeout time.Duration) domain.CommandResult {
	return m.watcher.WaitTimeout(ctx, cmd, timeout)
}

// GetCommand looks up a tracked command by id.
func (m *Manager) GetCommand(id string) (domain.SlashCommand, bool) {
	return m.registry.Get(id)
}

// ListActive returns every tracked command.
func (m *Manager) ListActive() []domain.SlashCommand {
	return m.registry.List()
}

// Cleanup removes one command, or every tracked command when id is
// empty. An in-flight wait for the same id is not cancelled; it will
// keep observing not-found or eventually time out.
func (m *Manager) Cleanup(id string) {
	if id == "" {
		m.registry.RemoveAll()
		return
	}
	m.registry.Remove(id)
}

// Diagnostics recomputes a fresh snapshot for a tracked command.
func (m *Manager) Diagnostics(id string) (domain.Diagnostics, error) {
	cmd, ok := m.registry.Get(id)
	if !ok {
		return domain.Diagnostics{}, fmt.Errorf("commands: no active command with id %s", id)
	}
	return CollectDiagnostics(cmd), nil
}
