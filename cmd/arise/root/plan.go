package root

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"arise/internal/config"
	"arise/internal/storage"
	"arise/internal/ui"
	"arise/internal/workout"
)

func newPlanCmd() *cobra.Command {
	var (
		goal      string
		equipment string
		minutes   int
		days      int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a workout plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days != 7 && days != 28 {
				return fmt.Errorf("--days must be 7 or 28, got %d", days)
			}

			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if minutes == 0 {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				minutes = cfg.SessionMinutes
			}

			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewSource(seed))
			}
			gen := workout.NewGenerator(nil, rng)
			in := workout.PlanInput{
				Goal:           workout.ParseGoal(goal),
				Equipment:      workout.ParseEquipment(equipment),
				SessionMinutes: minutes,
			}

			var plan []workout.WorkoutDay
			if days == 28 {
				plan = gen.MonthlyPlan(in)
			} else {
				plan = gen.WeeklyPlan(in)
			}

			snap, err := s.HealthRepo().Load(ctx)
			if err != nil {
				return err
			}
			if snap == nil {
				snap = &storage.HealthSnapshot{}
			}
			snap.Goal = in.Goal
			snap.Equipment = in.Equipment
			snap.SessionMinutes = in.SessionMinutes
			snap.Plan = plan
			if err := s.HealthRepo().Save(ctx, *snap); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDumbbell, fmt.Sprintf("%d-day plan — %s, %s, %d min sessions", days, in.Goal, in.Equipment, in.SessionMinutes)))
			for _, day := range plan {
				focus := ui.H2.Render(day.Focus)
				if day.IsRecovery {
					focus = ui.Muted.Render(day.Focus)
				}
				fmt.Fprintf(out, "\n%s — %s %s\n", ui.Key.Render(day.Day), focus, ui.Muted.Render(fmt.Sprintf("(%d min)", day.TotalDuration)))
				for _, ex := range day.Exercises {
					fmt.Fprintf(out, "  - %s: %d x %s %s\n", ex.Name, ex.Sets, ex.Reps, ui.Muted.Render(fmt.Sprintf("[%s, %d min]", ex.Type, ex.Duration)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&goal, "goal", "g", "build_muscle", "Goal (lose_weight|build_muscle|endurance)")
	cmd.Flags().StringVarP(&equipment, "equipment", "e", "bodyweight", "Equipment tier (bodyweight|dumbbells|gym)")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Session minutes (default from config)")
	cmd.Flags().IntVar(&days, "days", 7, "Plan length in days (7 or 28)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible plans (0 = random)")

	return cmd
}
