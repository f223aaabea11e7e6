package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"arise/internal/engine"
	"arise/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the player status window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := s.Player()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSystem, "STATUS WINDOW"))
			fmt.Fprintln(out, ui.LabelValue("Name", p.Name))
			fmt.Fprintln(out, ui.LabelValue("Job", fmt.Sprintf("%s — %s", p.Job, p.JobTitle)))
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.RankBadge(p.Rank)))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Key.Render("XP:"),
				ui.XPBar(p.CurrentXP, p.RequiredXP, 20),
				ui.Muted.Render(fmt.Sprintf("%d / %d (today %d, lifetime %d)", p.CurrentXP, p.RequiredXP, p.DailyXP, p.TotalXP)))
			fmt.Fprintln(out, ui.LabelValue("Gold", fmt.Sprintf("%s %d", ui.IconGold, p.Gold)))
			fmt.Fprintln(out, ui.LabelValue("HP", fmt.Sprintf("%d/%d", p.HP, p.MaxHP)))
			fmt.Fprintln(out, ui.LabelValue("MP", fmt.Sprintf("%d/%d", p.MP, p.MaxMP)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Attributes"))
			for _, stat := range engine.AllStats {
				fmt.Fprintf(out, "- %s: %d\n", stat, p.Stats[stat])
			}
			fmt.Fprintln(out, "")

			if p.PenaltyActive {
				remaining := "unknown"
				if p.PenaltyEndsAt != nil {
					remaining = time.Until(*p.PenaltyEndsAt).Round(time.Minute).String()
				}
				fmt.Fprintf(out, "%s %s\n\n", ui.BadgePenalty, ui.Muted.Render("clears in "+remaining))
			}

			daily := ui.Warn.Render("incomplete")
			if p.DailyQuestComplete {
				daily = ui.Good.Render("complete")
			}
			fmt.Fprintln(out, ui.LabelValue("Daily quest", daily))
			fmt.Fprintln(out, "")

			if len(p.Logs) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Recent activity"))
				limit := 5
				if len(p.Logs) < limit {
					limit = len(p.Logs)
				}
				for _, l := range p.Logs[:limit] {
					fmt.Fprintf(out, "- %s %s\n", ui.Muted.Render(l.Timestamp.Format("Jan 2 15:04")), l.Message)
				}
			}
			return nil
		},
	}
	return cmd
}
