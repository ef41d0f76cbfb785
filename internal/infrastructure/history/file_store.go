// Package history persists execution summaries so past generations can
// be inspected after the fact. The sqlite backend is the default; the
// jsonl file backend serves environments where sqlite cannot open.
package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/pkg/filesystem"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/ports"
)

// FileStore appends execution summaries to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by ~/.docgen/history/history.jsonl.
func NewFileStore() *FileStore {
	return &FileStore{
		path: filepath.Join(filesystem.UserHomeDir(), ".docgen", "history", "history.jsonl"),
	}
}

// Save implements ports.HistoryRepository.
func (f *FileStore) Save(summary domain.ExecutionSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Records loads summaries newest first, honoring limit and search.
func (f *FileStore) Records(limit int, search string) ([]domain.ExecutionSummary, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var summaries []domain.ExecutionSummary
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var summary domain.ExecutionSummary
		if err := json.Unmarshal(line, &summary); err != nil {
			continue
		}
		if !matches(summary, search) {
			continue
		}
		summaries = append(summaries, summary)
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].RecordedAt.After(summaries[j].RecordedAt)
	})
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ExportJSON copies the log to dest as jsonl.
func (f *FileStore) ExportJSON(dest string) error {
	summaries, err := f.Records(0, "")
	if err != nil {
		return err
	}
	return writeJSONL(dest, summaries)
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func matches(summary domain.ExecutionSummary, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(summary.Command.Name), needle) ||
		strings.Contains(strings.ToLower(summary.Command.ID), needle)
}

func writeJSONL(dest string, summaries []domain.ExecutionSummary) error {
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, summary := range summaries {
		b, err := json.Marshal(summary)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

var _ ports.HistoryRepository = (*FileStore)(nil)
