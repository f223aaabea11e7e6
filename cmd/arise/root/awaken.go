package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arise/internal/engine"
	"arise/internal/ui"
)

func newAwakenCmd() *cobra.Command {
	var vision []string
	var antiVision []string

	cmd := &cobra.Command{
		Use:   "awaken",
		Short: "Declare your vision and anti-vision",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(vision) == 0 && len(antiVision) == 0 {
				p := s.Player()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Awakening"))
				for _, v := range p.Vision {
					fmt.Fprintf(out, "  %s %s\n", ui.Good.Render("+"), v)
				}
				for _, v := range p.AntiVision {
					fmt.Fprintf(out, "  %s %s\n", ui.Bad.Render("-"), v)
				}
				return nil
			}

			s.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				v := p.Vision
				av := p.AntiVision
				if len(vision) > 0 {
					v = vision
				}
				if len(antiVision) > 0 {
					av = antiVision
				}
				return engine.SetAwakening(p, v, av), nil
			})
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Awakening recorded."))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vision, "vision", nil, "Who you are becoming (repeatable)")
	cmd.Flags().StringArrayVar(&antiVision, "anti", nil, "Who you refuse to become (repeatable)")

	return cmd
}
