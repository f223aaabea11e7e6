package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arise/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "arise",
	Short:         "Arise — a System for leveling up your real life",
	Long:          "Arise is a local-first CLI/TUI self-improvement tracker: quests, XP, ranks, penalties, and generated workout plans.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newQuestCmd(),
		newDailyCmd(),
		newShopCmd(),
		newPlanCmd(),
		newTrainCmd(),
		newBioCmd(),
		newPenaltyCmd(),
		newAwakenCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
