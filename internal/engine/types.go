package engine

type Stat string

const (
	StatStrength     Stat = "strength"
	StatIntelligence Stat = "intelligence"
	StatFocus        Stat = "focus"
	StatSocial       Stat = "social"
	StatWillpower    Stat = "willpower"
)

// AllStats is the canonical iteration order for the five attributes.
var AllStats = []Stat{StatStrength, StatIntelligence, StatFocus, StatSocial, StatWillpower}

func (s Stat) IsValid() bool {
	switch s {
	case StatStrength, StatIntelligence, StatFocus, StatSocial, StatWillpower:
		return true
	default:
		return false
	}
}

// DefaultStat is used when user input is missing/invalid.
const DefaultStat Stat = StatWillpower

type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

func (r Rank) IsValid() bool {
	switch r {
	case RankE, RankD, RankC, RankB, RankA, RankS:
		return true
	default:
		return false
	}
}

// questXPRewards maps a quest rank to the XP frozen on the quest at creation.
var questXPRewards = map[Rank]int{
	RankE: 10,
	RankD: 25,
	RankC: 50,
	RankB: 100,
	RankA: 200,
	RankS: 500,
}

// questStatAwards maps a quest rank to the attribute points granted on completion.
var questStatAwards = map[Rank]int{
	RankE: 1,
	RankD: 2,
	RankC: 5,
	RankB: 10,
	RankA: 20,
	RankS: 50,
}

// QuestXPReward returns the XP value frozen on a quest of the given rank.
func QuestXPReward(r Rank) int {
	if xp, ok := questXPRewards[r]; ok {
		return xp
	}
	return questXPRewards[RankE]
}

// QuestStatAward returns the attribute points for completing a quest of the given rank.
func QuestStatAward(r Rank) int {
	if pts, ok := questStatAwards[r]; ok {
		return pts
	}
	return questStatAwards[RankE]
}
