package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"arise/internal/engine"
	"arise/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage quests",
	}
	cmd.AddCommand(
		newQuestAddCmd(),
		newQuestDoCmd(),
		newQuestRmCmd(),
		newQuestResetCmd(),
		newQuestListCmd(),
	)
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var rank string
	var category string
	var description string
	var daily bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var q engine.Quest
			notes := s.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				p2, created, err2 := engine.AddQuest(p, engine.AddQuestInput{
					Title:       args[0],
					Description: description,
					Rank:        engine.ParseRank(rank),
					Category:    engine.ParseStat(category),
					IsDaily:     daily,
				}, time.Now())
				if err2 != nil {
					err = err2
					return p, nil
				}
				q = created
				return p2, nil
			})
			if err != nil {
				return err
			}
			printNotifications(cmd.OutOrStdout(), notes)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Quest %s added: %s (%s, +%d XP)\n",
				ui.IconQuest, ui.Muted.Render(shortID(q.ID)), q.Title, ui.RankBadge(q.Rank), q.XPReward)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rank, "rank", "r", "E", "Quest rank (E|D|C|B|A|S)")
	cmd.Flags().StringVarP(&category, "stat", "s", "willpower", "Attribute category (strength|intelligence|focus|social|willpower)")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "Quest description")
	cmd.Flags().BoolVar(&daily, "daily", false, "Repeat every day (resets on rollover)")

	return cmd
}

func newQuestDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveQuestID(s.Player().Quests, args[0])
			if err != nil {
				return err
			}
			notes := s.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				return engine.CompleteQuest(p, id, time.Now())
			})
			printNotifications(cmd.OutOrStdout(), notes)
			return nil
		},
	}
	return cmd
}

func newQuestRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveQuestID(s.Player().Quests, args[0])
			if err != nil {
				return err
			}
			s.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				return engine.DeleteQuest(p, id), nil
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Quest %s deleted\n", ui.Muted.Render(shortID(id)))
			return nil
		},
	}
	return cmd
}

func newQuestResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <id>",
		Short: "Reopen a completed quest (XP already awarded is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveQuestID(s.Player().Quests, args[0])
			if err != nil {
				return err
			}
			s.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				return engine.ResetQuest(p, id), nil
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Quest %s reopened\n", ui.Muted.Render(shortID(id)))
			return nil
		},
	}
	return cmd
}

func newQuestListCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quests := engine.FilterQuests(s.Player().Quests, engine.QuestFilter(filter))
			out := cmd.OutOrStdout()
			if len(quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No quests. Add one with: arise quest add"))
				return nil
			}
			for _, q := range quests {
				dailyTag := ""
				if q.IsDaily {
					dailyTag = ui.Muted.Render(" [daily]")
				}
				fmt.Fprintf(out, "%s %s %s %s (+%d XP, %s)%s [%s]\n",
					ui.IconQuest, ui.Muted.Render(shortID(q.ID)), ui.RankBadge(q.Rank),
					q.Title, q.XPReward, q.Category, dailyTag, ui.QuestStatus(q.IsCompleted))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Filter (all|active|completed)")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveQuestID accepts a full uuid or an unambiguous prefix.
func resolveQuestID(quests []engine.Quest, input string) (string, error) {
	var match string
	for _, q := range quests {
		if q.ID == input {
			return q.ID, nil
		}
		if len(input) >= 4 && len(q.ID) >= len(input) && q.ID[:len(input)] == input {
			if match != "" {
				return "", fmt.Errorf("quest id prefix %q is ambiguous", input)
			}
			match = q.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("quest %q not found", input)
	}
	return match, nil
}
