package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"arise/internal/engine"
	"arise/internal/ui"
)

func newPenaltyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "penalty",
		Short: "Inspect or manage the Penalty Zone",
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show penalty state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := s.Player()
			out := cmd.OutOrStdout()
			if !p.PenaltyActive {
				fmt.Fprintln(out, ui.Good.Render("No active penalty."))
				return nil
			}
			remaining := "unknown"
			if p.PenaltyEndsAt != nil {
				remaining = time.Until(*p.PenaltyEndsAt).Round(time.Minute).String()
			}
			fmt.Fprintf(out, "%s %s\n", ui.BadgePenalty, ui.Muted.Render("clears in "+remaining))
			return nil
		},
	}

	var reduceBy time.Duration
	reduce := &cobra.Command{
		Use:   "reduce",
		Short: "Shorten the penalty window (earned reduction)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			notes := s.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				return engine.ReducePenalty(p, reduceBy, time.Now())
			})
			printNotifications(cmd.OutOrStdout(), notes)
			return nil
		},
	}
	reduce.Flags().DurationVar(&reduceBy, "by", time.Hour, "Duration to remove from the window")

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Unconditionally clear the penalty (escape hatch)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				return engine.ClearPenaltyOverride(p), nil
			})
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Penalty cleared."))
			return nil
		},
	}

	cmd.AddCommand(status, reduce, clear)
	return cmd
}
