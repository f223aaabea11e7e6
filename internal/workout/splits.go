package workout

// dayFocus is one slot in a weekly split.
type dayFocus struct {
	Focus   string
	Muscles []string
	IsRest  bool
	Cardio  bool
}

var weekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// splitFor returns the fixed 7-day split for a goal.
func splitFor(goal Goal) []dayFocus {
	switch goal {
	case GoalLoseWeight:
		return []dayFocus{
			{Focus: "Full Body Circuit", Muscles: []string{"chest", "back", "quads", "core"}},
			{Focus: "CARDIO", Cardio: true},
			{Focus: "Full Body Circuit", Muscles: []string{"shoulders", "hamstrings", "glutes", "core"}},
			{Focus: "CARDIO", Cardio: true},
			{Focus: "Full Body Circuit", Muscles: []string{"chest", "back", "quads", "core"}},
			{Focus: "CARDIO", Cardio: true},
			{Focus: "REST", IsRest: true},
		}
	case GoalEndurance:
		return []dayFocus{
			{Focus: "Run", Cardio: true},
			{Focus: "Core", Muscles: []string{"core"}},
			{Focus: "Run", Cardio: true},
			{Focus: "Core", Muscles: []string{"core"}},
			{Focus: "Run", Cardio: true},
			{Focus: "Core", Muscles: []string{"core"}},
			{Focus: "REST", IsRest: true},
		}
	default: // GoalBuildMuscle
		return []dayFocus{
			{Focus: "Push", Muscles: []string{"chest", "shoulders", "triceps"}},
			{Focus: "Pull", Muscles: []string{"back", "biceps"}},
			{Focus: "Legs", Muscles: []string{"quads", "hamstrings", "glutes", "calves"}},
			{Focus: "REST", IsRest: true},
			{Focus: "Upper Body", Muscles: []string{"chest", "back", "shoulders"}},
			{Focus: "Lower Body", Muscles: []string{"quads", "hamstrings", "glutes", "core"}},
			{Focus: "REST", IsRest: true},
		}
	}
}
