package storage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"arise/internal/engine"
)

// DebouncedSaver coalesces rapid player mutations into a single trailing
// write, so bursts of local actions don't each hit the database. Last
// write wins; there is exactly one writer per player.
type DebouncedSaver struct {
	repo   *PlayerRepo
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	pending *engine.Player
	timer   *time.Timer
	closed  bool
}

func NewDebouncedSaver(repo *PlayerRepo, delay time.Duration, logger *slog.Logger) *DebouncedSaver {
	if logger == nil {
		logger = slog.Default()
	}
	return &DebouncedSaver{repo: repo, delay: delay, logger: logger}
}

// Enqueue schedules a save of the snapshot, replacing any pending one.
func (s *DebouncedSaver) Enqueue(p engine.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	snapshot := p.Clone()
	s.pending = &snapshot

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.flush)
}

func (s *DebouncedSaver) flush() {
	s.mu.Lock()
	p := s.pending
	s.pending = nil
	s.mu.Unlock()

	if p == nil {
		return
	}
	if err := s.repo.Save(context.Background(), *p); err != nil {
		// Persistence failures must not corrupt or block engine state.
		s.logger.Error("debounced save failed", "error", err)
	}
}

// Flush writes any pending snapshot immediately.
func (s *DebouncedSaver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flush()
}

// Close flushes and stops accepting further snapshots.
func (s *DebouncedSaver) Close() {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flush()
}
