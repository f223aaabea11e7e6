package root

import (
	"context"
	"fmt"
	"io"

	"arise/internal/config"
	"arise/internal/engine"
	"arise/internal/session"
	"arise/internal/ui"
)

func openSession(ctx context.Context) (*session.Session, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	s, err := session.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = s.Close()
	}
	return s, cleanup, nil
}

func printNotifications(w io.Writer, notes []engine.Notification) {
	for _, n := range notes {
		fmt.Fprintln(w, ui.Notify(n))
	}
}
