package engine

import (
	"fmt"
	"math"
	"time"
)

// RequiredXPForLevel returns the XP needed to clear the given level.
func RequiredXPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * XPPerLevel
}

// rankThresholds are totalXP lower bounds, ascending. Highest match wins.
var rankThresholds = []struct {
	Rank    Rank
	TotalXP int
}{
	{RankE, 0},
	{RankD, 1_000},
	{RankC, 3_000},
	{RankB, 10_000},
	{RankA, 25_000},
	{RankS, 50_000},
}

// RankForTotalXP derives the lifetime rank from total XP.
func RankForTotalXP(totalXP int) Rank {
	rank := RankE
	for _, t := range rankThresholds {
		if totalXP >= t.TotalXP {
			rank = t.Rank
		}
	}
	return rank
}

// GrantXP awards XP, gold, and runs the leveling loop. A no-op while the
// Penalty Zone is active. The returned player always satisfies
// 0 <= CurrentXP < RequiredXP and RequiredXP == Level*500.
func GrantXP(p Player, amount int, now time.Time) (Player, []Notification) {
	if p.PenaltyActive {
		return p, []Notification{penaltyBlocked()}
	}
	if amount <= 0 {
		return p, []Notification{notify(NotifyWarning, "XP amount must be positive")}
	}

	out := p.Clone()
	out.CurrentXP += amount
	out.TotalXP += amount
	out.DailyXP += amount

	gold := int(math.Floor(float64(amount) * GoldPerXPRate))
	out.Gold += gold

	var notes []Notification
	for out.CurrentXP >= out.RequiredXP {
		out.CurrentXP -= out.RequiredXP
		out.Level++
		out.RequiredXP = RequiredXPForLevel(out.Level)
		out.HP = out.MaxHP
		out.MP = out.MaxMP
		out.addLog(now, LogLevelUp, fmt.Sprintf("Level up! You are now level %d", out.Level))
		notes = append(notes, notify(NotifyLevelUp, "LEVEL UP! You reached level %d", out.Level))
	}

	out.Rank = RankForTotalXP(out.TotalXP)
	out.addLog(now, LogXP, fmt.Sprintf("+%d XP, +%d gold", amount, gold))
	notes = append(notes, notify(NotifySuccess, "+%d XP", amount))
	return out, notes
}

// CompleteDailyQuest marks today's daily quest done and awards the fixed bonus.
func CompleteDailyQuest(p Player, now time.Time) (Player, []Notification) {
	if p.PenaltyActive {
		return p, []Notification{penaltyBlocked()}
	}
	if p.DailyQuestComplete {
		return p, []Notification{notify(NotifyInfo, "Daily quest already completed")}
	}

	out := p.Clone()
	out.DailyQuestComplete = true
	out.addLog(now, LogQuest, "Daily quest completed")

	out, notes := GrantXP(out, DailyQuestXP, now)
	return out, append([]Notification{notify(NotifySuccess, "Daily quest complete")}, notes...)
}
