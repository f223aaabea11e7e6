package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"arise/internal/engine"
)

// Training XP is deliberately modest: quests are the main progression
// path, workouts top it up.
const trainXP = 50

func newTrainCmd() *cobra.Command {
	var fatigue int

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Log a completed workout session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if fatigue < 0 || fatigue > 100 {
				return fmt.Errorf("--fatigue must be in [0, 100], got %d", fatigue)
			}

			notes := s.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				out, ns := engine.GrantXP(p, trainXP, time.Now())
				out = engine.AddFatigue(out, fatigue)
				return out, ns
			})
			printNotifications(cmd.OutOrStdout(), notes)
			return nil
		},
	}

	cmd.Flags().IntVar(&fatigue, "fatigue", 10, "Fatigue added by the session (0-100)")
	return cmd
}
