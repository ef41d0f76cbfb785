// Package commands implements the hand-off protocol with Claude Code:
// command files are placed in a shared directory, tracked in a
// registry, and resolved by a completion watcher that races an
// immediate check, a directory-change watch, and a timeout.
package commands

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/ports"
)

// Registry tracks outstanding slash commands by id. It is the source
// of truth for what is outstanding; a command removed here is gone
// from lookups regardless of whether its backing file was deleted.
type Registry struct {
	mu   sync.Mutex
	byID map[string]domain.SlashCommand
	log  ports.Logger
}

// NewRegistry builds an empty registry.
func NewRegistry(log ports.Logger) *Registry {
	return &Registry{
		byID: make(map[string]domain.SlashCommand),
		log:  log,
	}
}

// Add records a newly created command.
func (r *Registry) Add(cmd domain.SlashCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[cmd.ID] = cmd
}

// Get returns the command for id, if tracked.
func (r *Registry) Get(id string) (domain.SlashCommand, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmd, ok := r.byID[id]
	return cmd, ok
}

// List returns all tracked commands.
func (r *Registry) List() []domain.SlashCommand {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SlashCommand, 0, len(r.byID))
	for _, cmd := range r.byID {
		out = append(out, cmd)
	}
	return out
}

// Remove drops the command and deletes its backing file. A missing
// file is tolerated silently; any other deletion error is logged and
// swallowed so cleanup keeps making forward progress.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	cmd, ok := r.byID[id]
	delete(r.byID, id)
	r.mu.Unlock()
	if !ok {
		return
	}
	r.deleteFile(cmd)
}

// RemoveAll empties the registry, deleting every backing file.
func (r *Registry) RemoveAll() {
	r.mu.Lock()
	removed := make([]domain.SlashCommand, 0, len(r.byID))
	for id, cmd := range r.byID {
		removed = append(removed, cmd)
		delete(r.byID, id)
	}
	r.mu.Unlock()
	for _, cmd := range removed {
		r.deleteFile(cmd)
	}
}

func (r *Registry) deleteFile(cmd domain.SlashCommand) {
	if cmd.FilePath == "" {
		return
	}
	if err := os.Remove(cmd.FilePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.log.Warn("cleanup: remove command file failed", map[string]interface{}{
			"id":    cmd.ID,
			"path":  cmd.FilePath,
			"error": err.Error(),
		})
	}
}
