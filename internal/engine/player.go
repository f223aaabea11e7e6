package engine

import (
	"time"

	"github.com/google/uuid"
)

const (
	// XPPerLevel is the constant in the level curve: XP_req = Level * 500.
	XPPerLevel = 500

	// GoldPerXPRate is the gold granted per point of XP.
	GoldPerXPRate = 0.5

	// DailyQuestXP is the XP awarded for the daily quest.
	DailyQuestXP = 200

	// MissedDailyPenaltyXP is deducted from total and current XP on a missed daily.
	MissedDailyPenaltyXP = 100

	// PenaltyDuration is the lockout window after a missed daily quest.
	PenaltyDuration = 4 * time.Hour

	// StatDecayAfter is the idle window before an attribute starts decaying.
	StatDecayAfter = 48 * time.Hour

	// MaxLogEntries bounds the activity log ring buffer.
	MaxLogEntries = 20

	// MaxHistoryEntries bounds the daily history ring buffer.
	MaxHistoryEntries = 30

	initialStatValue = 10
	statFloor        = 1
)

type LogType string

const (
	LogInfo    LogType = "info"
	LogXP      LogType = "xp"
	LogLevelUp LogType = "level_up"
	LogQuest   LogType = "quest"
	LogPenalty LogType = "penalty"
	LogDecay   LogType = "decay"
	LogShop    LogType = "shop"
)

// LogEntry is one line of the player's activity log, newest first.
type LogEntry struct {
	ID        string
	Message   string
	Timestamp time.Time
	Type      LogType
}

// HistoryEntry is an immutable end-of-day snapshot, newest first.
type HistoryEntry struct {
	Date    string
	Stats   map[Stat]int
	TotalXP int
	DailyXP int
}

// Quest is a user-declared task that awards XP and attribute points on completion.
type Quest struct {
	ID          string
	Title       string
	Description string
	Rank        Rank
	Category    Stat
	XPReward    int
	IsCompleted bool
	CreatedAt   time.Time
	IsDaily     bool
}

// ShopItem is a gold-redeemable reward.
type ShopItem struct {
	ID          string
	Name        string
	Description string
	Cost        int
}

// Player is the root aggregate. Transforms never mutate a Player in place;
// they clone, modify the clone, and return it together with notifications.
type Player struct {
	UserID   string
	Name     string
	Job      string
	JobTitle string

	Level      int
	CurrentXP  int
	RequiredXP int
	TotalXP    int
	DailyXP    int
	Rank       Rank
	Gold       int

	Stats          map[Stat]int
	LastStatUpdate map[Stat]time.Time

	History []HistoryEntry

	HP      int
	MaxHP   int
	MP      int
	MaxMP   int
	Fatigue int

	LastLoginDate      string
	DailyQuestComplete bool

	PenaltyActive bool
	PenaltyEndsAt *time.Time

	Logs      []LogEntry
	Quests    []Quest
	ShopItems []ShopItem

	Vision     []string
	AntiVision []string
}

// NewPlayer returns a freshly awakened level 1 player.
func NewPlayer(name string, now time.Time) Player {
	stats := make(map[Stat]int, len(AllStats))
	updated := make(map[Stat]time.Time, len(AllStats))
	for _, s := range AllStats {
		stats[s] = initialStatValue
		updated[s] = now
	}
	return Player{
		UserID:         uuid.NewString(),
		Name:           name,
		Job:            "None",
		JobTitle:       "Awakened",
		Level:          1,
		RequiredXP:     XPPerLevel,
		Rank:           RankE,
		Stats:          stats,
		LastStatUpdate: updated,
		HP:             100,
		MaxHP:          100,
		MP:             50,
		MaxMP:          50,
		LastLoginDate:  CalendarDate(now),
	}
}

// Clone returns a deep copy so transforms can keep the input untouched.
func (p Player) Clone() Player {
	cp := p

	cp.Stats = make(map[Stat]int, len(p.Stats))
	for k, v := range p.Stats {
		cp.Stats[k] = v
	}
	cp.LastStatUpdate = make(map[Stat]time.Time, len(p.LastStatUpdate))
	for k, v := range p.LastStatUpdate {
		cp.LastStatUpdate[k] = v
	}

	cp.History = make([]HistoryEntry, len(p.History))
	for i, h := range p.History {
		stats := make(map[Stat]int, len(h.Stats))
		for k, v := range h.Stats {
			stats[k] = v
		}
		h.Stats = stats
		cp.History[i] = h
	}

	cp.Logs = append([]LogEntry(nil), p.Logs...)
	cp.Quests = append([]Quest(nil), p.Quests...)
	cp.ShopItems = append([]ShopItem(nil), p.ShopItems...)
	cp.Vision = append([]string(nil), p.Vision...)
	cp.AntiVision = append([]string(nil), p.AntiVision...)

	if p.PenaltyEndsAt != nil {
		t := *p.PenaltyEndsAt
		cp.PenaltyEndsAt = &t
	}
	return cp
}

// CalendarDate renders the local calendar date used to gate daily rollover.
func CalendarDate(now time.Time) string {
	return now.Format("2006-01-02")
}

// addLog prepends an entry and truncates the ring buffer.
func (p *Player) addLog(now time.Time, typ LogType, message string) {
	entry := LogEntry{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: now,
		Type:      typ,
	}
	p.Logs = append([]LogEntry{entry}, p.Logs...)
	if len(p.Logs) > MaxLogEntries {
		p.Logs = p.Logs[:MaxLogEntries]
	}
}

// QuestByID returns the quest with the given id, or nil.
func (p *Player) QuestByID(id string) *Quest {
	for i := range p.Quests {
		if p.Quests[i].ID == id {
			return &p.Quests[i]
		}
	}
	return nil
}
