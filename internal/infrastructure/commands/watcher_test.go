package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/pkg/logger"
)

func testCommand(t *testing.T) domain.SlashCommand {
	t.Helper()
	dir := t.TempDir()
	return domain.SlashCommand{
		ID:         "cmd-test",
		Name:       "readme",
		FilePath:   filepath.Join(dir, "readme.md"),
		OutputPath: filepath.Join(dir, "out", "README.md"),
		CreatedAt:  time.Now(),
		Metadata:   map[string]string{"version": "1"},
	}
}

func TestWaitResolvesImmediatelyWhenOutputExists(t *testing.T) {
	cmd := testCommand(t)
	if err := os.MkdirAll(filepath.Dir(cmd.OutputPath), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(cmd.OutputPath, []byte("# done"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w := NewWatcher(logger.NewStd(false), 5*time.Second, 50*time.Millisecond)
	res := w.Wait(context.Background(), cmd)

	if !res.Success {
		t.Fatalf("Wait() Success = false, Error = %q", res.Error)
	}
	if res.Content != "# done" {
		t.Fatalf("Wait() Content = %q", res.Content)
	}
	if res.CommandID != cmd.ID {
		t.Fatalf("Wait() CommandID = %q, want %q", res.CommandID, cmd.ID)
	}
	if res.Diagnostics == nil || !res.Diagnostics.OutputExists {
		t.Fatalf("Wait() Diagnostics = %+v, want existing output", res.Diagnostics)
	}
}

func TestWaitResolvesWhenOutputAppearsLater(t *testing.T) {
	cmd := testCommand(t)
	w := NewWatcher(logger.NewStd(false), 5*time.Second, 20*time.Millisecond)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.MkdirAll(filepath.Dir(cmd.OutputPath), 0o755)
		_ = os.WriteFile(cmd.OutputPath, []byte("late"), 0o600)
	}()

	res := w.Wait(context.Background(), cmd)
	if !res.Success {
		t.Fatalf("Wait() Success = false, Error = %q", res.Error)
	}
	if res.Content != "late" {
		t.Fatalf("Wait() Content = %q", res.Content)
	}
}

func TestWaitTimesOutWhenOutputNeverAppears(t *testing.T) {
	cmd := testCommand(t)
	w := NewWatcher(logger.NewStd(false), 100*time.Millisecond, 20*time.Millisecond)

	res := w.Wait(context.Background(), cmd)
	if res.Success {
		t.Fatal("Wait() Success = true for missing output")
	}
	if !strings.Contains(res.Error, "timed out") {
		t.Fatalf("Wait() Error = %q, want timeout message", res.Error)
	}
	if !strings.Contains(res.Error, cmd.ID) {
		t.Fatalf("Wait() Error = %q, want command id", res.Error)
	}
	if res.Diagnostics == nil || res.Diagnostics.OutputExists {
		t.Fatalf("Wait() Diagnostics = %+v, want absent output", res.Diagnostics)
	}
}

func TestWaitFailsWhenOutputPathIsDirectory(t *testing.T) {
	cmd := testCommand(t)
	if err := os.MkdirAll(cmd.OutputPath, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	w := NewWatcher(logger.NewStd(false), 5*time.Second, 20*time.Millisecond)
	res := w.Wait(context.Background(), cmd)
	if res.Success {
		t.Fatal("Wait() Success = true for unreadable output")
	}
	if !strings.Contains(res.Error, "read output") {
		t.Fatalf("Wait() Error = %q, want read failure", res.Error)
	}
}

func TestWaitCancelledContextProducesResult(t *testing.T) {
	cmd := testCommand(t)
	w := NewWatcher(logger.NewStd(false), 5*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	res := w.Wait(ctx, cmd)
	if res.Success {
		t.Fatal("Wait() Success = true after cancellation")
	}
	if !strings.Contains(res.Error, "cancelled") {
		t.Fatalf("Wait() Error = %q, want cancellation message", res.Error)
	}
}

func TestConfirmReadWaitsForStableSize(t *testing.T) {
	cmd := testCommand(t)
	if err := os.MkdirAll(filepath.Dir(cmd.OutputPath), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	file, err := os.OpenFile(cmd.OutputPath, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer file.Close()
	if _, err := file.WriteString("par"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}

	w := NewWatcher(logger.NewStd(false), 5*time.Second, 20*time.Millisecond)
	st := newSettlement()
	var tracker sizeTracker

	if w.confirmRead(cmd, st, &tracker) {
		t.Fatal("confirmRead() settled on the first observation")
	}
	if _, err := file.WriteString("tial"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	if w.confirmRead(cmd, st, &tracker) {
		t.Fatal("confirmRead() settled while the file was still growing")
	}
	if !w.confirmRead(cmd, st, &tracker) {
		t.Fatal("confirmRead() did not settle once the size stabilized")
	}

	res := <-st.ch
	if !res.Success || res.Content != "partial" {
		t.Fatalf("settled result = %+v, want full content", res)
	}
}

func TestConfirmReadResetsWhenFileDisappears(t *testing.T) {
	cmd := testCommand(t)
	if err := os.MkdirAll(filepath.Dir(cmd.OutputPath), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(cmd.OutputPath, []byte("draft"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w := NewWatcher(logger.NewStd(false), 5*time.Second, 20*time.Millisecond)
	st := newSettlement()
	var tracker sizeTracker

	if w.confirmRead(cmd, st, &tracker) {
		t.Fatal("confirmRead() settled on the first observation")
	}
	if err := os.Remove(cmd.OutputPath); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if w.confirmRead(cmd, st, &tracker) {
		t.Fatal("confirmRead() settled on a missing file")
	}

	// Reappearing content must be observed twice again before settling.
	if err := os.WriteFile(cmd.OutputPath, []byte("final"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if w.confirmRead(cmd, st, &tracker) {
		t.Fatal("confirmRead() settled without re-confirming the new file")
	}
	if !w.confirmRead(cmd, st, &tracker) {
		t.Fatal("confirmRead() did not settle on the stable rewrite")
	}
	res := <-st.ch
	if res.Content != "final" {
		t.Fatalf("settled Content = %q, want %q", res.Content, "final")
	}
}

func TestWaitTimeoutOverridesConfiguredDeadline(t *testing.T) {
	cmd := testCommand(t)
	w := NewWatcher(logger.NewStd(false), time.Hour, 20*time.Millisecond)

	start := time.Now()
	res := w.WaitTimeout(context.Background(), cmd, 100*time.Millisecond)
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Fatalf("WaitTimeout() took %s despite 100ms override", elapsed)
	}
	if res.Success {
		t.Fatal("WaitTimeout() Success = true for missing output")
	}
	if !strings.Contains(res.Error, "timed out after 100ms") {
		t.Fatalf("WaitTimeout() Error = %q, want override in message", res.Error)
	}
}

func TestSettlementSettlesExactlyOnce(t *testing.T) {
	st := newSettlement()

	var wins int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if st.settle(domain.CommandResult{CommandID: "racer", DurationMS: int64(n)}) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("settle() won %d times, want exactly 1", wins)
	}
	select {
	case res := <-st.ch:
		if res.CommandID != "racer" {
			t.Fatalf("settled result CommandID = %q", res.CommandID)
		}
	default:
		t.Fatal("settlement channel empty after winning settle")
	}
}
