package workout

// DefaultCatalog is the built-in exercise library. Sub-targets let the
// generator spread selection across regions of a muscle group before
// gap-filling.
func DefaultCatalog() []CatalogExercise {
	return []CatalogExercise{
		// Chest
		{Name: "Push-up", MuscleGroup: "chest", SubTarget: "middle", Equipment: EquipmentBodyweight, Type: TypeCompound, Difficulty: 1},
		{Name: "Incline Push-up", MuscleGroup: "chest", SubTarget: "lower", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 1},
		{Name: "Decline Push-up", MuscleGroup: "chest", SubTarget: "upper", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 2},
		{Name: "Dumbbell Bench Press", MuscleGroup: "chest", SubTarget: "middle", Equipment: EquipmentDumbbells, Type: TypeCompound, Difficulty: 2},
		{Name: "Incline Dumbbell Press", MuscleGroup: "chest", SubTarget: "upper", Equipment: EquipmentDumbbells, Type: TypeCompound, Difficulty: 2},
		{Name: "Dumbbell Fly", MuscleGroup: "chest", SubTarget: "middle", Equipment: EquipmentDumbbells, Type: TypeAccessory, Difficulty: 2},
		{Name: "Barbell Bench Press", MuscleGroup: "chest", SubTarget: "middle", Equipment: EquipmentGym, Type: TypeCompound, Difficulty: 3},
		{Name: "Cable Crossover", MuscleGroup: "chest", SubTarget: "lower", Equipment: EquipmentGym, Type: TypeAccessory, Difficulty: 2},

		// Back
		{Name: "Superman Hold", MuscleGroup: "back", SubTarget: "lower", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 1},
		{Name: "Inverted Row", MuscleGroup: "back", SubTarget: "middle", Equipment: EquipmentBodyweight, Type: TypeCompound, Difficulty: 2},
		{Name: "Pull-up", MuscleGroup: "back", SubTarget: "lats", Equipment: EquipmentBodyweight, Type: TypeCompound, Difficulty: 3},
		{Name: "Dumbbell Row", MuscleGroup: "back", SubTarget: "middle", Equipment: EquipmentDumbbells, Type: TypeCompound, Difficulty: 2},
		{Name: "Dumbbell Pullover", MuscleGroup: "back", SubTarget: "lats", Equipment: EquipmentDumbbells, Type: TypeAccessory, Difficulty: 2},
		{Name: "Lat Pulldown", MuscleGroup: "back", SubTarget: "lats", Equipment: EquipmentGym, Type: TypeCompound, Difficulty: 2},
		{Name: "Deadlift", MuscleGroup: "back", SubTarget: "lower", Equipment: EquipmentGym, Type: TypeCompound, Difficulty: 4},
		{Name: "Seated Cable Row", MuscleGroup: "back", SubTarget: "middle", Equipment: EquipmentGym, Type: TypeCompound, Difficulty: 2},

		// Shoulders
		{Name: "Pike Push-up", MuscleGroup: "shoulders", SubTarget: "front", Equipment: EquipmentBodyweight, Type: TypeCompound, Difficulty: 2},
		{Name: "Wall Handstand Hold", MuscleGroup: "shoulders", SubTarget: "front", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 3},
		{Name: "Dumbbell Shoulder Press", MuscleGroup: "shoulders", SubTarget: "front", Equipment: EquipmentDumbbells, Type: TypeCompound, Difficulty: 2},
		{Name: "Lateral Raise", MuscleGroup: "shoulders", SubTarget: "side", Equipment: EquipmentDumbbells, Type: TypeAccessory, Difficulty: 1},
		{Name: "Rear Delt Fly", MuscleGroup: "shoulders", SubTarget: "rear", Equipment: EquipmentDumbbells, Type: TypeAccessory, Difficulty: 2},
		{Name: "Overhead Press", MuscleGroup: "shoulders", SubTarget: "front", Equipment: EquipmentGym, Type: TypeCompound, Difficulty: 3},
		{Name: "Face Pull", MuscleGroup: "shoulders", SubTarget: "rear", Equipment: EquipmentGym, Type: TypeAccessory, Difficulty: 2},

		// Arms
		{Name: "Diamond Push-up", MuscleGroup: "triceps", SubTarget: "long", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 2},
		{Name: "Bench Dip", MuscleGroup: "triceps", SubTarget: "lateral", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 1},
		{Name: "Chin-up", MuscleGroup: "biceps", SubTarget: "long", Equipment: EquipmentBodyweight, Type: TypeCompound, Difficulty: 3},
		{Name: "Dumbbell Curl", MuscleGroup: "biceps", SubTarget: "short", Equipment: EquipmentDumbbells, Type: TypeAccessory, Difficulty: 1},
		{Name: "Hammer Curl", MuscleGroup: "biceps", SubTarget: "long", Equipment: EquipmentDumbbells, Type: TypeAccessory, Difficulty: 1},
		{Name: "Overhead Triceps Extension", MuscleGroup: "triceps", SubTarget: "long", Equipment: EquipmentDumbbells, Type: TypeAccessory, Difficulty: 1},
		{Name: "Cable Triceps Pushdown", MuscleGroup: "triceps", SubTarget: "lateral", Equipment: EquipmentGym, Type: TypeAccessory, Difficulty: 1},
		{Name: "Barbell Curl", MuscleGroup: "biceps", SubTarget: "short", Equipment: EquipmentGym, Type: TypeAccessory, Difficulty: 2},

		// Legs
		{Name: "Bodyweight Squat", MuscleGroup: "quads", SubTarget: "overall", Equipment: EquipmentBodyweight, Type: TypeCompound, Difficulty: 1},
		{Name: "Walking Lunge", MuscleGroup: "quads", SubTarget: "unilateral", Equipment: EquipmentBodyweight, Type: TypeCompound, Difficulty: 1},
		{Name: "Glute Bridge", MuscleGroup: "glutes", SubTarget: "overall", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 1},
		{Name: "Single-Leg Calf Raise", MuscleGroup: "calves", SubTarget: "overall", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 1},
		{Name: "Nordic Curl", MuscleGroup: "hamstrings", SubTarget: "overall", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 4},
		{Name: "Goblet Squat", MuscleGroup: "quads", SubTarget: "overall", Equipment: EquipmentDumbbells, Type: TypeCompound, Difficulty: 2},
		{Name: "Dumbbell Romanian Deadlift", MuscleGroup: "hamstrings", SubTarget: "overall", Equipment: EquipmentDumbbells, Type: TypeCompound, Difficulty: 2},
		{Name: "Dumbbell Step-up", MuscleGroup: "quads", SubTarget: "unilateral", Equipment: EquipmentDumbbells, Type: TypeAccessory, Difficulty: 2},
		{Name: "Barbell Back Squat", MuscleGroup: "quads", SubTarget: "overall", Equipment: EquipmentGym, Type: TypeCompound, Difficulty: 3},
		{Name: "Leg Press", MuscleGroup: "quads", SubTarget: "overall", Equipment: EquipmentGym, Type: TypeCompound, Difficulty: 2},
		{Name: "Leg Curl", MuscleGroup: "hamstrings", SubTarget: "overall", Equipment: EquipmentGym, Type: TypeAccessory, Difficulty: 1},
		{Name: "Hip Thrust", MuscleGroup: "glutes", SubTarget: "overall", Equipment: EquipmentGym, Type: TypeCompound, Difficulty: 2},

		// Core
		{Name: "Plank", MuscleGroup: "core", SubTarget: "static", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 1},
		{Name: "Hanging Leg Raise", MuscleGroup: "core", SubTarget: "lower", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 3},
		{Name: "Bicycle Crunch", MuscleGroup: "core", SubTarget: "oblique", Equipment: EquipmentBodyweight, Type: TypeAccessory, Difficulty: 1},
		{Name: "Russian Twist", MuscleGroup: "core", SubTarget: "oblique", Equipment: EquipmentDumbbells, Type: TypeAccessory, Difficulty: 1},
		{Name: "Cable Crunch", MuscleGroup: "core", SubTarget: "upper", Equipment: EquipmentGym, Type: TypeAccessory, Difficulty: 2},

		// Cardio / conditioning
		{Name: "Jumping Jacks", MuscleGroup: "cardio", SubTarget: "steady", Equipment: EquipmentBodyweight, Type: TypeCardio, Difficulty: 1},
		{Name: "Burpees", MuscleGroup: "cardio", SubTarget: "interval", Equipment: EquipmentBodyweight, Type: TypeCardio, Difficulty: 2},
		{Name: "Mountain Climbers", MuscleGroup: "cardio", SubTarget: "interval", Equipment: EquipmentBodyweight, Type: TypeCardio, Difficulty: 1},
		{Name: "Outdoor Run", MuscleGroup: "cardio", SubTarget: "steady", Equipment: EquipmentBodyweight, Type: TypeCardio, Difficulty: 1},
		{Name: "Treadmill Intervals", MuscleGroup: "cardio", SubTarget: "interval", Equipment: EquipmentGym, Type: TypeCardio, Difficulty: 2},
		{Name: "Rowing Machine", MuscleGroup: "cardio", SubTarget: "steady", Equipment: EquipmentGym, Type: TypeCardio, Difficulty: 2},
	}
}
