package workout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator(seed int64) *Generator {
	return NewGenerator(nil, rand.New(rand.NewSource(seed)))
}

func TestWeeklyPlanShape(t *testing.T) {
	g := testGenerator(1)
	plan := g.WeeklyPlan(PlanInput{Goal: GoalBuildMuscle, Equipment: EquipmentGym, SessionMinutes: 45})

	require.Len(t, plan, 7)
	for _, day := range plan {
		assert.NotEmpty(t, day.Day)
		assert.NotEmpty(t, day.Focus)
		assert.NotEmpty(t, day.Exercises)
		assert.Positive(t, day.TotalDuration)
		if day.IsRecovery {
			assert.Equal(t, "REST", day.Focus)
			assert.Len(t, day.Exercises, 1)
		}
	}
	// Build-muscle split has two rest days.
	rests := 0
	for _, day := range plan {
		if day.IsRecovery {
			rests++
		}
	}
	assert.Equal(t, 2, rests)
}

func TestMonthlyPlanShape(t *testing.T) {
	g := testGenerator(2)
	plan := g.MonthlyPlan(PlanInput{Goal: GoalLoseWeight, Equipment: EquipmentBodyweight, SessionMinutes: 30})
	require.Len(t, plan, 28)
	assert.Equal(t, "Day 1", plan[0].Day)
	assert.Equal(t, "Day 28", plan[27].Day)
}

func TestBodyweightEquipmentConstraint(t *testing.T) {
	byName := map[string]CatalogExercise{}
	for _, ex := range DefaultCatalog() {
		byName[ex.Name] = ex
	}

	for _, goal := range []Goal{GoalLoseWeight, GoalBuildMuscle, GoalEndurance} {
		g := testGenerator(3)
		plan := g.WeeklyPlan(PlanInput{Goal: goal, Equipment: EquipmentBodyweight, SessionMinutes: 45})
		for _, day := range plan {
			for _, ex := range day.Exercises {
				cat, ok := byName[ex.Name]
				if !ok {
					continue // warmup/recovery entries are not catalog movements
				}
				assert.Equal(t, EquipmentBodyweight, cat.Equipment,
					"goal=%s day=%s exercise=%s", goal, day.Day, ex.Name)
			}
		}
	}
}

func TestTimeBudgetRespected(t *testing.T) {
	g := testGenerator(4)
	plan := g.WeeklyPlan(PlanInput{Goal: GoalBuildMuscle, Equipment: EquipmentGym, SessionMinutes: 30})

	for _, day := range plan {
		if day.IsRecovery {
			continue
		}
		sum := 0
		for _, ex := range day.Exercises {
			sum += ex.Duration
		}
		assert.Equal(t, day.TotalDuration, sum, "day=%s", day.Day)
		// Within one accessory unit of the session budget.
		assert.LessOrEqual(t, day.TotalDuration, 30+accessoryMinutes, "day=%s", day.Day)
	}
}

func TestWarmupOnNonRestDays(t *testing.T) {
	g := testGenerator(5)
	plan := g.WeeklyPlan(PlanInput{Goal: GoalEndurance, Equipment: EquipmentBodyweight, SessionMinutes: 40})
	for _, day := range plan {
		if day.IsRecovery {
			continue
		}
		require.NotEmpty(t, day.Exercises)
		assert.Equal(t, "Dynamic Warm-up", day.Exercises[0].Name, "day=%s", day.Day)
	}
}

func TestSetRepScaling(t *testing.T) {
	gShort := testGenerator(6)
	short := gShort.WeeklyPlan(PlanInput{Goal: GoalBuildMuscle, Equipment: EquipmentGym, SessionMinutes: 45})
	gLong := testGenerator(6)
	long := gLong.WeeklyPlan(PlanInput{Goal: GoalLoseWeight, Equipment: EquipmentGym, SessionMinutes: 60})

	for _, day := range short {
		for _, ex := range day.Exercises {
			if ex.Type == TypeCompound || ex.Type == TypeAccessory {
				assert.Equal(t, "8-12", ex.Reps)
				assert.LessOrEqual(t, ex.Sets, 4)
				assert.GreaterOrEqual(t, ex.Sets, 3)
			}
		}
	}
	for _, day := range long {
		for _, ex := range day.Exercises {
			if ex.Type == TypeCompound || ex.Type == TypeAccessory {
				assert.Equal(t, "12-15", ex.Reps)
				assert.LessOrEqual(t, ex.Sets, 5)
				assert.GreaterOrEqual(t, ex.Sets, 4)
			}
		}
	}
}

func TestDeterministicGivenSeed(t *testing.T) {
	in := PlanInput{Goal: GoalBuildMuscle, Equipment: EquipmentDumbbells, SessionMinutes: 45}
	a := testGenerator(42).WeeklyPlan(in)
	b := testGenerator(42).WeeklyPlan(in)
	assert.Equal(t, a, b)
}

func TestExerciseCountBounds(t *testing.T) {
	g := testGenerator(7)
	plan := g.WeeklyPlan(PlanInput{Goal: GoalBuildMuscle, Equipment: EquipmentGym, SessionMinutes: 90})
	for _, day := range plan {
		if day.IsRecovery {
			continue
		}
		// Excluding the warmup entry.
		n := len(day.Exercises) - 1
		assert.LessOrEqual(t, n, maxExercisesPerDay, "day=%s", day.Day)
		assert.GreaterOrEqual(t, n, 1, "day=%s", day.Day)
	}
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, GoalLoseWeight, ParseGoal("cut"))
	assert.Equal(t, GoalEndurance, ParseGoal("Cardio"))
	assert.Equal(t, GoalBuildMuscle, ParseGoal(""))
	assert.Equal(t, EquipmentGym, ParseEquipment("gym"))
	assert.Equal(t, EquipmentDumbbells, ParseEquipment("home"))
	assert.Equal(t, EquipmentBodyweight, ParseEquipment("whatever"))
}
