package workout

import (
	"fmt"
	"math/rand"
	"time"
)

// Fixed per-exercise time units, in minutes including rest.
const (
	warmupMinutes    = 5
	compoundMinutes  = 12
	accessoryMinutes = 7
	recoveryMinutes  = 20
	maxCardioMinutes = 45

	minExercisesPerDay = 3
	maxExercisesPerDay = 6
)

// PlanInput parameterizes plan generation.
type PlanInput struct {
	Goal           Goal
	Equipment      Equipment
	SessionMinutes int
}

// Generator builds workout plans from a catalog. The RNG drives exercise
// selection only; structure (splits, budgets, filters) is deterministic.
type Generator struct {
	catalog []CatalogExercise
	rng     *rand.Rand
}

// NewGenerator creates a plan generator. A nil rng falls back to a
// time-seeded source; pass a seeded one for reproducible plans.
func NewGenerator(catalog []CatalogExercise, rng *rand.Rand) *Generator {
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{catalog: catalog, rng: rng}
}

// WeeklyPlan builds a 7-day cycle.
func (g *Generator) WeeklyPlan(in PlanInput) []WorkoutDay {
	in = normalize(in)
	split := splitFor(in.Goal)

	days := make([]WorkoutDay, 0, len(split))
	for i, df := range split {
		day := g.buildDay(df, in)
		day.Day = weekDays[i]
		days = append(days, day)
	}
	return days
}

// MonthlyPlan builds a 28-day plan as four weekly cycles with distinct
// day labels.
func (g *Generator) MonthlyPlan(in PlanInput) []WorkoutDay {
	in = normalize(in)
	split := splitFor(in.Goal)

	days := make([]WorkoutDay, 0, 4*len(split))
	for week := 0; week < 4; week++ {
		for i, df := range split {
			day := g.buildDay(df, in)
			day.Day = fmt.Sprintf("Day %d", week*len(split)+i+1)
			days = append(days, day)
		}
	}
	return days
}

func normalize(in PlanInput) PlanInput {
	if !in.Goal.IsValid() {
		in.Goal = GoalBuildMuscle
	}
	if !in.Equipment.IsValid() {
		in.Equipment = EquipmentBodyweight
	}
	if in.SessionMinutes < 20 {
		in.SessionMinutes = 20
	}
	return in
}

func (g *Generator) buildDay(df dayFocus, in PlanInput) WorkoutDay {
	if df.IsRest {
		return WorkoutDay{
			Focus:      df.Focus,
			IsRecovery: true,
			Exercises: []Exercise{{
				Name:     "Light Walk & Stretch",
				Sets:     1,
				Reps:     fmt.Sprintf("%d min", recoveryMinutes),
				Duration: recoveryMinutes,
				Type:     TypeStretch,
			}},
			TotalDuration: recoveryMinutes,
		}
	}

	exercises := []Exercise{warmup()}
	total := warmupMinutes

	if df.Cardio {
		block := in.SessionMinutes - warmupMinutes
		if block > maxCardioMinutes {
			block = maxCardioMinutes
		}
		pool := g.filter(in.Equipment, []string{"cardio"})
		if pick, ok := g.pickOne(pool); ok {
			exercises = append(exercises, Exercise{
				Name:     pick.Name,
				Sets:     1,
				Reps:     fmt.Sprintf("%d min", block),
				Duration: block,
				Type:     TypeCardio,
			})
			total += block
		}
		return WorkoutDay{Focus: df.Focus, Exercises: exercises, TotalDuration: total}
	}

	pool := g.filter(in.Equipment, df.Muscles)
	g.shuffle(pool)

	remaining := in.SessionMinutes - warmupMinutes
	count := 0

	// First pass: at most one exercise per sub-target for holistic
	// muscle activation.
	var leftovers []CatalogExercise
	subTargets := map[string]bool{}
	for _, ex := range pool {
		key := ex.MuscleGroup + "/" + ex.SubTarget
		if subTargets[key] {
			leftovers = append(leftovers, ex)
			continue
		}
		unit := unitMinutes(ex.Type)
		if count >= maxExercisesPerDay || unit > remaining {
			continue
		}
		subTargets[key] = true
		exercises = append(exercises, g.prescribe(ex, in))
		remaining -= unit
		total += unit
		count++
	}

	// Gap-fill the leftover time budget.
	for _, ex := range leftovers {
		if count >= maxExercisesPerDay {
			break
		}
		unit := unitMinutes(ex.Type)
		if unit > remaining {
			if count >= minExercisesPerDay {
				break
			}
			continue
		}
		exercises = append(exercises, g.prescribe(ex, in))
		remaining -= unit
		total += unit
		count++
	}

	return WorkoutDay{Focus: df.Focus, Exercises: exercises, TotalDuration: total}
}

func warmup() Exercise {
	return Exercise{
		Name:     "Dynamic Warm-up",
		Sets:     1,
		Reps:     fmt.Sprintf("%d min", warmupMinutes),
		Duration: warmupMinutes,
		Type:     TypeStretch,
	}
}

func unitMinutes(t ExerciseType) int {
	if t == TypeCompound {
		return compoundMinutes
	}
	return accessoryMinutes
}

// prescribe scales sets and reps by goal and session length: long
// sessions get an extra set, muscle building uses lower rep ranges.
func (g *Generator) prescribe(ex CatalogExercise, in PlanInput) Exercise {
	sets := 3
	if in.SessionMinutes >= 60 {
		sets = 4
	}
	if ex.Type == TypeCompound {
		sets++
	}

	reps := "12-15"
	if in.Goal == GoalBuildMuscle {
		reps = "8-12"
	}

	return Exercise{
		Name:     ex.Name,
		Sets:     sets,
		Reps:     reps,
		Duration: unitMinutes(ex.Type),
		Type:     ex.Type,
	}
}

func (g *Generator) filter(tier Equipment, muscles []string) []CatalogExercise {
	wanted := map[string]bool{}
	for _, m := range muscles {
		wanted[m] = true
	}
	var out []CatalogExercise
	for _, ex := range g.catalog {
		if !tier.allows(ex.Equipment) {
			continue
		}
		if len(wanted) > 0 && !wanted[ex.MuscleGroup] {
			continue
		}
		out = append(out, ex)
	}
	return out
}

func (g *Generator) shuffle(pool []CatalogExercise) {
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

func (g *Generator) pickOne(pool []CatalogExercise) (CatalogExercise, bool) {
	if len(pool) == 0 {
		return CatalogExercise{}, false
	}
	return pool[g.rng.Intn(len(pool))], true
}
