package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/pkg/filesystem"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/ports"
)

// Watcher resolves a pending slash command into exactly one terminal
// result. Three triggers race to settle the wait: an immediate read
// performed before anything else, a directory-change notification on
// the output directory, and a timeout timer. Whichever fires first
// wins; the rest become no-ops.
type Watcher struct {
	log          ports.Logger
	timeout      time.Duration
	pollInterval time.Duration
	now          func() time.Time
}

// NewWatcher builds a watcher with the given timeout and poll cadence.
func NewWatcher(log ports.Logger, timeout, pollInterval time.Duration) *Watcher {
	if timeout <= 0 {
		timeout = time.Duration(domain.DefaultCommandTimeoutMS) * time.Millisecond
	}
	if pollInterval <= 0 {
		pollInterval = time.Duration(domain.DefaultPollIntervalMS) * time.Millisecond
	}
	return &Watcher{
		log:          log,
		timeout:      timeout,
		pollInterval: pollInterval,
		now:          time.Now,
	}
}

// settlement is the one-shot resolution primitive shared by the
// completion triggers. The first settle wins; later calls are no-ops.
type settlement struct {
	once sync.Once
	ch   chan domain.CommandResult
}

func newSettlement() *settlement {
	return &settlement{ch: make(chan domain.CommandResult, 1)}
}

// settle records the terminal result if nothing settled before it.
// It reports whether this call won the race.
func (s *settlement) settle(res domain.CommandResult) bool {
	won := false
	s.once.Do(func() {
		s.ch <- res
		won = true
	})
	return won
}

// sizeTracker remembers the last observed output size so a
// notification that fires mid-write does not settle on truncated
// content. Owned by a single watch or poll goroutine; no locking.
type sizeTracker struct {
	size int64
	seen bool
}

// Wait blocks until the command's output artifact appears, reading it
// fails, the timeout elapses, or ctx is cancelled. Once armed it
// always returns a result, never an error: callers distinguish the
// outcomes through the Success flag and Error text.
func (w *Watcher) Wait(ctx context.Context, cmd domain.SlashCommand) domain.CommandResult {
	return w.WaitTimeout(ctx, cmd, w.timeout)
}

// WaitTimeout is Wait with a per-call deadline. A non-positive timeout
// falls back to the watcher's configured one.
func (w *Watcher) WaitTimeout(ctx context.Context, cmd domain.SlashCommand, timeout time.Duration) domain.CommandResult {
	if timeout <= 0 {
		timeout = w.timeout
	}
	start := w.now()
	st := newSettlement()

	// Directory-level watch: many filesystems cannot watch a single
	// file that does not exist yet.
	outputDir := filepath.Dir(cmd.OutputPath)
	if err := filesystem.EnsureDirectory(outputDir, 0o755); err != nil {
		w.log.Warn("watch: ensure output directory failed", map[string]interface{}{
			"dir":   outputDir,
			"error": err.Error(),
		})
	}

	timer := time.AfterFunc(timeout, func() {
		// Fresh snapshot: honest even if the file appeared between checks.
		diag := CollectDiagnostics(cmd)
		st.settle(domain.CommandResult{
			Success:     false,
			Error:       fmt.Sprintf("command %s timed out after %s waiting for %s", cmd.ID, timeout, cmd.OutputPath),
			OutputPath:  cmd.OutputPath,
			CommandID:   cmd.ID,
			Metadata:    domain.CloneMetadata(cmd.Metadata),
			Diagnostics: &diag,
		})
	})
	defer timer.Stop()

	watchCtx, disarm := context.WithCancel(context.Background())
	defer disarm()

	notifier, err := fsnotify.NewWatcher()
	if err == nil {
		if addErr := notifier.Add(outputDir); addErr != nil {
			_ = notifier.Close()
			notifier = nil
			err = addErr
		}
	}
	if err != nil {
		// Degraded mode: the watch could not be established, so fall
		// back to polling the output path. The timeout stays armed.
		w.log.Warn("watch: directory watch unavailable, polling instead", map[string]interface{}{
			"dir":   outputDir,
			"error": err.Error(),
		})
		go w.pollLoop(watchCtx, cmd, st)
	} else {
		go w.watchLoop(watchCtx, notifier, cmd, st)
	}

	// Immediate check: Claude may have finished before the watch was
	// established, or an output from a previous invocation may still
	// be on disk.
	w.attemptRead(cmd, st)

	var res domain.CommandResult
	select {
	case res = <-st.ch:
	case <-ctx.Done():
		diag := CollectDiagnostics(cmd)
		st.settle(domain.CommandResult{
			Success:     false,
			Error:       fmt.Sprintf("wait cancelled for command %s: %v", cmd.ID, ctx.Err()),
			OutputPath:  cmd.OutputPath,
			CommandID:   cmd.ID,
			Metadata:    domain.CloneMetadata(cmd.Metadata),
			Diagnostics: &diag,
		})
		// The settlement channel is buffered and written exactly once,
		// so this receive returns the winner even if settle lost.
		res = <-st.ch
	}
	res.DurationMS = w.now().Sub(start).Milliseconds()
	return res
}

// watchLoop filters directory notifications down to the expected
// output path and re-runs the confirming read on a match. A safety-net
// ticker covers events that raced the watch registration and provides
// the follow-up observation the confirming read needs.
func (w *Watcher) watchLoop(ctx context.Context, notifier *fsnotify.Watcher, cmd domain.SlashCommand, st *settlement) {
	defer func() { _ = notifier.Close() }()
	want := filepath.Clean(cmd.OutputPath)
	var tracker sizeTracker
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-notifier.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != want {
				continue
			}
			if w.confirmRead(cmd, st, &tracker) {
				return
			}
		case watchErr, ok := <-notifier.Errors:
			if !ok {
				return
			}
			if watchErr != nil {
				w.log.Warn("watch: notifier error", map[string]interface{}{
					"id":    cmd.ID,
					"error": watchErr.Error(),
				})
			}
		case <-ticker.C:
			if w.confirmRead(cmd, st, &tracker) {
				return
			}
		}
	}
}

// pollLoop is the degraded-mode replacement for watchLoop when the
// directory watch cannot be established.
func (w *Watcher) pollLoop(ctx context.Context, cmd domain.SlashCommand, st *settlement) {
	var tracker sizeTracker
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.confirmRead(cmd, st, &tracker) {
				return
			}
		}
	}
}

// confirmRead settles Success only once two consecutive observations
// report the same output size. A create notification can arrive before
// the writer has written its bytes; settling off that first read would
// capture empty or truncated content. Read failures other than
// not-found settle immediately through the shared read semantics.
func (w *Watcher) confirmRead(cmd domain.SlashCommand, st *settlement, tracker *sizeTracker) bool {
	info, err := os.Stat(cmd.OutputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			tracker.seen = false
			return false
		}
		return w.attemptRead(cmd, st)
	}
	size := info.Size()
	if !tracker.seen || tracker.size != size {
		tracker.seen = true
		tracker.size = size
		return false
	}
	return w.attemptRead(cmd, st)
}

// attemptRead applies the shared read semantics: an absent file keeps
// the wait pending, readable content settles Success, and any other
// read failure settles Failure. Reports whether this call settled.
func (w *Watcher) attemptRead(cmd domain.SlashCommand, st *settlement) bool {
	data, err := os.ReadFile(cmd.OutputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false
		}
		diag := CollectDiagnostics(cmd)
		return st.settle(domain.CommandResult{
			Success:     false,
			Error:       fmt.Sprintf("read output %s: %v", cmd.OutputPath, err),
			OutputPath:  cmd.OutputPath,
			CommandID:   cmd.ID,
			Metadata:    domain.CloneMetadata(cmd.Metadata),
			Diagnostics: &diag,
		})
	}
	diag := CollectDiagnostics(cmd)
	return st.settle(domain.CommandResult{
		Success:     true,
		Content:     string(data),
		OutputPath:  cmd.OutputPath,
		CommandID:   cmd.ID,
		Metadata:    domain.CloneMetadata(cmd.Metadata),
		Diagnostics: &diag,
	})
}
