// Package workout generates constraint-based training plans from a
// tagged exercise catalog, a goal, an equipment tier, and a session
// time budget. Selection is randomized but always respects the
// equipment and time constraints; inject a seeded rand.Rand for
// reproducible output.
package workout

import "strings"

type Goal string

const (
	GoalLoseWeight  Goal = "LOSE_WEIGHT"
	GoalBuildMuscle Goal = "BUILD_MUSCLE"
	GoalEndurance   Goal = "ENDURANCE"
)

func (g Goal) IsValid() bool {
	switch g {
	case GoalLoseWeight, GoalBuildMuscle, GoalEndurance:
		return true
	default:
		return false
	}
}

// ParseGoal maps user input to a Goal, defaulting to BUILD_MUSCLE.
func ParseGoal(input string) Goal {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "lose_weight", "lose", "cut":
		return GoalLoseWeight
	case "endurance", "cardio":
		return GoalEndurance
	default:
		return GoalBuildMuscle
	}
}

// Equipment is the user's available tier. Tiers are strict supersets:
// dumbbell users can do everything bodyweight users can, gym users
// everything.
type Equipment string

const (
	EquipmentBodyweight Equipment = "BODYWEIGHT"
	EquipmentDumbbells  Equipment = "HOME_DUMBBELLS"
	EquipmentGym        Equipment = "GYM"
)

func (e Equipment) IsValid() bool {
	switch e {
	case EquipmentBodyweight, EquipmentDumbbells, EquipmentGym:
		return true
	default:
		return false
	}
}

// ParseEquipment maps user input to a tier, defaulting to bodyweight.
func ParseEquipment(input string) Equipment {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "dumbbells", "home_dumbbells", "home":
		return EquipmentDumbbells
	case "gym", "full_gym":
		return EquipmentGym
	default:
		return EquipmentBodyweight
	}
}

// allows reports whether a user at this tier can perform an exercise
// requiring the given tier.
func (e Equipment) allows(needed Equipment) bool {
	rank := map[Equipment]int{
		EquipmentBodyweight: 0,
		EquipmentDumbbells:  1,
		EquipmentGym:        2,
	}
	return rank[needed] <= rank[e]
}

type ExerciseType string

const (
	TypeCompound  ExerciseType = "COMPOUND"
	TypeAccessory ExerciseType = "ACCESSORY"
	TypeCardio    ExerciseType = "CARDIO"
	TypeStretch   ExerciseType = "STRETCH"
)

// CatalogExercise is one movement in the exercise library.
type CatalogExercise struct {
	Name        string
	MuscleGroup string
	SubTarget   string
	Equipment   Equipment
	Type        ExerciseType
	Difficulty  int
}

// Exercise is a prescribed movement inside a WorkoutDay.
type Exercise struct {
	Name      string
	Sets      int
	Reps      string
	Duration  int // minutes, display and budget unit
	Completed bool
	Type      ExerciseType
	VideoURL  string
}

// WorkoutDay is one scheduled day of a plan.
type WorkoutDay struct {
	Day           string
	Focus         string
	Exercises     []Exercise
	IsRecovery    bool
	TotalDuration int
}
