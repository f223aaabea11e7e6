package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"arise/internal/engine"
)

// Arise theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSystem   = "🟦"
	IconSparkle  = "✨"
	IconQuest    = "🗺️"
	IconDone     = "✅"
	IconSword    = "⚔️"
	IconBolt     = "⚡"
	IconGold     = "🪙"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconSkull    = "💀"
	IconHeart    = "❤️"
	IconDumbbell = "🏋️"
	IconScroll   = "📜"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgePenalty = lipgloss.NewStyle().Bold(true).Foreground(cBad).Render("PENALTY ZONE")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RankBadge renders a colored rank letter.
func RankBadge(r engine.Rank) string {
	switch r {
	case engine.RankS:
		return Gold.Render("S")
	case engine.RankA:
		return Bad.Render("A")
	case engine.RankB:
		return Warn.Render("B")
	case engine.RankC:
		return H2.Render("C")
	case engine.RankD:
		return Good.Render("D")
	default:
		return Muted.Render("E")
	}
}

// XPBar renders a fixed-width progress bar for currentXP/requiredXP.
func XPBar(current, required, width int) string {
	if width < 4 {
		width = 4
	}
	if required <= 0 {
		required = 1
	}
	filled := current * width / required
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return Good.Render(bar)
}

// Notify renders an engine notification for terminal output.
func Notify(n engine.Notification) string {
	switch n.Type {
	case engine.NotifyLevelUp:
		return BadgeLevelUp + " " + Gold.Render(n.Message)
	case engine.NotifySuccess:
		return Good.Render(IconDone + " " + n.Message)
	case engine.NotifyWarning:
		return Warn.Render(IconWarn + " " + n.Message)
	case engine.NotifyDanger:
		return Bad.Render(IconSkull + " " + n.Message)
	default:
		return Muted.Render(n.Message)
	}
}

// QuestStatus renders a quest completion marker.
func QuestStatus(done bool) string {
	if done {
		return Good.Render("done")
	}
	return Warn.Render("active")
}
