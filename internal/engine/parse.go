package engine

import "strings"

// ParseStat parses user input to a Stat.
// Supported: strength, intelligence, focus, social, willpower (plus short forms).
// If input is empty or unrecognized, returns DefaultStat.
func ParseStat(input string) Stat {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultStat
	case "strength", "str":
		return StatStrength
	case "intelligence", "int":
		return StatIntelligence
	case "focus", "foc":
		return StatFocus
	case "social", "soc":
		return StatSocial
	case "willpower", "will", "wil":
		return StatWillpower
	default:
		return DefaultStat
	}
}

// ParseRank parses user input to a quest Rank. Defaults to E.
func ParseRank(input string) Rank {
	r := Rank(strings.TrimSpace(strings.ToUpper(input)))
	if r.IsValid() {
		return r
	}
	return RankE
}
