package engine

// SetAwakening stores the player's declared vision and anti-vision.
// Free-form goals with no engine coupling.
func SetAwakening(p Player, vision, antiVision []string) Player {
	out := p.Clone()
	out.Vision = append([]string(nil), vision...)
	out.AntiVision = append([]string(nil), antiVision...)
	return out
}

// DefaultShopItems seeds a new player's reward shop.
func DefaultShopItems() []ShopItem {
	return []ShopItem{
		{ID: "rest-day", Name: "Guilt-Free Rest Day", Description: "One full day off, no penalties from yourself", Cost: 300},
		{ID: "cheat-meal", Name: "Cheat Meal", Description: "One meal outside the plan", Cost: 150},
		{ID: "episode", Name: "One Episode", Description: "Watch one episode of anything", Cost: 80},
		{ID: "game-hour", Name: "Gaming Hour", Description: "One hour of games", Cost: 100},
		{ID: "sleep-in", Name: "Sleep In", Description: "Skip the morning alarm once", Cost: 200},
	}
}

// AddFatigue raises fatigue after training, clamped to [0, 100].
func AddFatigue(p Player, amount int) Player {
	if amount == 0 {
		return p
	}
	out := p.Clone()
	out.Fatigue += amount
	if out.Fatigue > 100 {
		out.Fatigue = 100
	}
	if out.Fatigue < 0 {
		out.Fatigue = 0
	}
	return out
}
