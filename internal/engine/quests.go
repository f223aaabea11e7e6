package engine

import (
	"fmt"
	"time"
)

const statCeiling = 100

// CompleteQuest marks a quest done, grants its frozen XP reward, and
// raises the quest's category attribute by the rank-derived amount.
// No-op (with an advisory notification) while the penalty is active, for
// an unknown quest id, or when the quest was already completed.
func CompleteQuest(p Player, questID string, now time.Time) (Player, []Notification) {
	if p.PenaltyActive {
		return p, []Notification{penaltyBlocked()}
	}

	q := p.QuestByID(questID)
	if q == nil {
		return p, []Notification{notify(NotifyWarning, "Quest not found")}
	}
	if q.IsCompleted {
		return p, []Notification{notify(NotifyInfo, "Quest %q is already completed", q.Title)}
	}

	out := p.Clone()
	done := out.QuestByID(questID)
	done.IsCompleted = true

	award := QuestStatAward(done.Rank)
	stat := done.Category
	if !stat.IsValid() {
		stat = DefaultStat
	}
	out.Stats[stat] += award
	if out.Stats[stat] > statCeiling {
		out.Stats[stat] = statCeiling
	}
	out.LastStatUpdate[stat] = now

	out.addLog(now, LogQuest, fmt.Sprintf("Quest %q complete: +%d XP, +%d %s", done.Title, done.XPReward, award, stat))

	out, notes := GrantXP(out, done.XPReward, now)
	return out, append([]Notification{notify(NotifySuccess, "Quest complete: %s (+%d %s)", done.Title, award, stat)}, notes...)
}
