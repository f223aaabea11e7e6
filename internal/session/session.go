// Package session owns the single mutable Player reference for a local
// run: it loads the snapshot, applies the session-start reconciliation,
// routes pure engine transforms through one place, and schedules
// debounced persistence after each mutation.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"arise/internal/config"
	"arise/internal/engine"
	"arise/internal/storage"
)

type Session struct {
	db      *sql.DB
	players *storage.PlayerRepo
	healths *storage.HealthRepo
	saver   *storage.DebouncedSaver

	player engine.Player
}

// Open loads (or creates) the player, runs the rollover/decay/penalty
// reconciliation, and persists the result. The reconciliation runs
// before any other read of the snapshot.
func Open(ctx context.Context, cfg config.Config) (*Session, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, err
	}

	players := storage.NewPlayerRepo(db)
	s := &Session{
		db:      db,
		players: players,
		healths: storage.NewHealthRepo(db),
		saver:   storage.NewDebouncedSaver(players, cfg.SaveDebounce, slog.Default()),
	}

	now := time.Now()
	loaded, err := players.Load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if loaded == nil {
		p := engine.NewPlayer("Hunter", now)
		p.ShopItems = engine.DefaultShopItems()
		s.player = p
		if err := players.Save(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create player: %w", err)
		}
		return s, nil
	}

	p, _ := engine.OnLoad(*loaded, now)
	s.player = p
	s.saver.Enqueue(p)
	return s, nil
}

// Player returns the current snapshot.
func (s *Session) Player() engine.Player {
	return s.player
}

// HealthRepo exposes the health profile store.
func (s *Session) HealthRepo() *storage.HealthRepo {
	return s.healths
}

// Apply runs a transform against the current player, adopts the result,
// and schedules a save.
func (s *Session) Apply(fn func(engine.Player) (engine.Player, []engine.Notification)) []engine.Notification {
	p, notes := fn(s.player)
	s.player = p
	s.saver.Enqueue(p)
	return notes
}

// Close flushes pending writes and releases the database.
func (s *Session) Close() error {
	s.saver.Close()
	return s.db.Close()
}
