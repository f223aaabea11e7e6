package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"arise/internal/engine"
	"arise/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Spend gold on rewards",
	}
	cmd.AddCommand(newShopListCmd(), newShopBuyCmd())
	return cmd
}

func newShopListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shop items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := s.Player()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconGold, fmt.Sprintf("Shop — %d gold", p.Gold)))
			for _, item := range p.ShopItems {
				fmt.Fprintf(out, "- %s %s (%d gold) %s\n",
					ui.Muted.Render(item.ID), item.Name, item.Cost, ui.Muted.Render(item.Description))
			}
			return nil
		},
	}
	return cmd
}

func newShopBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Purchase an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var item *engine.ShopItem
			for i := range s.Player().ShopItems {
				if s.Player().ShopItems[i].ID == args[0] {
					it := s.Player().ShopItems[i]
					item = &it
					break
				}
			}
			if item == nil {
				return fmt.Errorf("shop item %q not found", args[0])
			}

			notes := s.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				return engine.PurchaseItem(p, *item, time.Now())
			})
			printNotifications(cmd.OutOrStdout(), notes)
			return nil
		},
	}
	return cmd
}
