package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"arise/internal/engine"
)

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Complete today's daily quest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			notes := s.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				return engine.CompleteDailyQuest(p, time.Now())
			})
			printNotifications(cmd.OutOrStdout(), notes)
			return nil
		},
	}
	return cmd
}
