package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteStoreFallbackUsesJSONLSibling(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	store := &SQLiteStore{path: dbPath}

	if err := store.Save(summaryAt("cmd-1", "readme", true, time.Now())); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("fallback wrote to the database path, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "history.jsonl")); err != nil {
		t.Fatalf("jsonl fallback file missing: %v", err)
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 || records[0].Command.ID != "cmd-1" {
		t.Fatalf("Records() = %+v, want the saved summary", records)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err = store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("Records() = %+v after Clear()", records)
	}
}
