package engine

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddQuestInput describes a new quest. XPReward is derived from Rank and
// frozen at creation.
type AddQuestInput struct {
	Title       string
	Description string
	Rank        Rank
	Category    Stat
	IsDaily     bool
}

// AddQuest appends a new quest to the player's ledger.
func AddQuest(p Player, in AddQuestInput, now time.Time) (Player, Quest, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return p, Quest{}, errors.New("quest title is required")
	}

	rank := in.Rank
	if !rank.IsValid() {
		rank = RankE
	}
	category := in.Category
	if !category.IsValid() {
		category = DefaultStat
	}

	q := Quest{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Rank:        rank,
		Category:    category,
		XPReward:    QuestXPReward(rank),
		CreatedAt:   now,
		IsDaily:     in.IsDaily,
	}

	out := p.Clone()
	out.Quests = append(out.Quests, q)
	return out, q, nil
}

// DeleteQuest removes a quest by id. Unknown ids are ignored.
func DeleteQuest(p Player, questID string) Player {
	out := p.Clone()
	quests := out.Quests[:0]
	for _, q := range out.Quests {
		if q.ID != questID {
			quests = append(quests, q)
		}
	}
	out.Quests = quests
	return out
}

// ResetQuest reopens a completed quest without refunding the XP already
// awarded. The award is irreversible.
func ResetQuest(p Player, questID string) Player {
	out := p.Clone()
	if q := out.QuestByID(questID); q != nil {
		q.IsCompleted = false
	}
	return out
}

type QuestFilter string

const (
	QuestFilterAll       QuestFilter = "all"
	QuestFilterActive    QuestFilter = "active"
	QuestFilterCompleted QuestFilter = "completed"
)

// FilterQuests returns quests matching the filter, newest first.
func FilterQuests(quests []Quest, filter QuestFilter) []Quest {
	var out []Quest
	for _, q := range quests {
		switch filter {
		case QuestFilterActive:
			if q.IsCompleted {
				continue
			}
		case QuestFilterCompleted:
			if !q.IsCompleted {
				continue
			}
		}
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
