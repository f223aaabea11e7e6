package engine

import (
	"fmt"
	"time"
)

// ApplyDailyRollover reconciles the player across a calendar-day boundary.
// It is gated on LastLoginDate, so invoking it repeatedly within the same
// day is a no-op. Must run before any other read of a loaded player.
func ApplyDailyRollover(p Player, now time.Time) (Player, []Notification) {
	today := CalendarDate(now)
	if p.LastLoginDate == today {
		return p, nil
	}

	out := p.Clone()

	// Snapshot the previous day before any counters are touched.
	snapshot := HistoryEntry{
		Date:    out.LastLoginDate,
		Stats:   make(map[Stat]int, len(out.Stats)),
		TotalXP: out.TotalXP,
		DailyXP: out.DailyXP,
	}
	for k, v := range out.Stats {
		snapshot.Stats[k] = v
	}
	out.History = append([]HistoryEntry{snapshot}, out.History...)
	if len(out.History) > MaxHistoryEntries {
		out.History = out.History[:MaxHistoryEntries]
	}

	out.DailyXP = 0
	for i := range out.Quests {
		if out.Quests[i].IsDaily {
			out.Quests[i].IsCompleted = false
		}
	}

	var notes []Notification
	if !out.DailyQuestComplete {
		// Missed daily: deduct from total and current XP independently,
		// floored at zero. Level and RequiredXP are intentionally left
		// alone; re-validate the XP window instead of recomputing them.
		out.TotalXP = max(0, out.TotalXP-MissedDailyPenaltyXP)
		out.CurrentXP = max(0, out.CurrentXP-MissedDailyPenaltyXP)
		if out.CurrentXP >= out.RequiredXP {
			out.CurrentXP = out.RequiredXP - 1
		}
		out.Rank = RankForTotalXP(out.TotalXP)

		ends := now.Add(PenaltyDuration)
		out.PenaltyActive = true
		out.PenaltyEndsAt = &ends

		out.addLog(now, LogPenalty, fmt.Sprintf("Daily quest missed: -%d XP, Penalty Zone active", MissedDailyPenaltyXP))
		notes = append(notes, notify(NotifyDanger, "You failed the daily quest. Entering the Penalty Zone for %s.", PenaltyDuration))
	} else {
		out.DailyQuestComplete = false
		out.addLog(now, LogInfo, "New daily quests are available")
		notes = append(notes, notify(NotifyInfo, "A new day begins. Daily quests reset."))
	}

	out.LastLoginDate = today
	return out, notes
}
