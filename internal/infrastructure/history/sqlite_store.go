package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/pkg/filesystem"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/ports"
)

// SQLiteStore persists execution summaries in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) ~/.docgen/history/history.db. If
// the database cannot be opened the store degrades to the jsonl file
// backend rather than failing startup.
func NewSQLiteStore() *SQLiteStore {
	path := filepath.Join(filesystem.UserHomeDir(), ".docgen", "history", "history.db")
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS executions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		command_id TEXT,
		name TEXT,
		success INTEGER,
		error TEXT,
		output_path TEXT,
		duration_ms INTEGER,
		version TEXT,
		created_at TEXT,
		recorded_at TEXT
	);`)
	return err
}

// fileFallback returns the jsonl store used when the database never
// opened. The log lands next to the database path, never inside it.
func (s *SQLiteStore) fileFallback() *FileStore {
	base := strings.TrimSuffix(s.path, filepath.Ext(s.path))
	return &FileStore{path: base + ".jsonl"}
}

// Save inserts a new execution summary.
func (s *SQLiteStore) Save(summary domain.ExecutionSummary) error {
	if s.db == nil {
		return s.fileFallback().Save(summary)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO executions
		(command_id, name, success, error, output_path, duration_ms, version, created_at, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.Command.ID,
		summary.Command.Name,
		boolToInt(summary.Result.Success),
		summary.Result.Error,
		summary.Result.OutputPath,
		summary.Result.DurationMS,
		summary.Command.Metadata["version"],
		summary.Command.CreatedAt.Format(time.RFC3339),
		summary.RecordedAt.Format(time.RFC3339),
	)
	return err
}

// Records returns summaries newest first, honoring limit and search.
func (s *SQLiteStore) Records(limit int, search string) ([]domain.ExecutionSummary, error) {
	if s.db == nil {
		return s.fileFallback().Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT command_id, name, success, error, output_path, duration_ms, version, created_at, recorded_at FROM executions")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE name LIKE ? OR command_id LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(recorded_at) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var summaries []domain.ExecutionSummary
	for rows.Next() {
		var summary domain.ExecutionSummary
		var success int
		var version, createdAt, recordedAt string
		if err := rows.Scan(
			&summary.Command.ID,
			&summary.Command.Name,
			&success,
			&summary.Result.Error,
			&summary.Result.OutputPath,
			&summary.Result.DurationMS,
			&version,
			&createdAt,
			&recordedAt,
		); err != nil {
			return nil, err
		}
		summary.Result.Success = success == 1
		summary.Result.CommandID = summary.Command.ID
		if version != "" {
			summary.Command.Metadata = map[string]string{"version": version}
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			summary.Command.CreatedAt = t
		}
		if t, err := time.Parse(time.RFC3339, recordedAt); err == nil {
			summary.RecordedAt = t
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Clear deletes all recorded executions.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fileFallback().Clear()
	}
	_, err := s.db.Exec("DELETE FROM executions")
	return err
}

// ExportJSON writes the execution table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	summaries, err := s.Records(0, "")
	if err != nil {
		return err
	}
	return writeJSONL(dest, summaries)
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
