package domain

// MuscleGroup is one of the fixed muscle group values an exercise can target.
type MuscleGroup string

const (
	MuscleShoulders  MuscleGroup = "Shoulders"
	MuscleTriceps    MuscleGroup = "Triceps"
	MuscleBiceps     MuscleGroup = "Biceps"
	MuscleForearms   MuscleGroup = "Forearms"
	MuscleChest      MuscleGroup = "Chest"
	MuscleBack       MuscleGroup = "Back"
	MuscleAbs        MuscleGroup = "Abs"
	MuscleGlutes     MuscleGroup = "Glutes"
	MuscleQuadriceps MuscleGroup = "Quadriceps"
	MuscleHamstrings MuscleGroup = "Hamstrings"
	MuscleCalves     MuscleGroup = "Calves"
	MuscleOther      MuscleGroup = "Other"
)

// MuscleGroups lists every valid muscle group value.
var MuscleGroups = []MuscleGroup{
	MuscleShoulders, MuscleTriceps, MuscleBiceps, MuscleForearms,
	MuscleChest, MuscleBack, MuscleAbs, MuscleGlutes,
	MuscleQuadriceps, MuscleHamstrings, MuscleCalves, MuscleOther,
}

// ValidMuscleGroup reports whether g is a known muscle group.
func ValidMuscleGroup(g MuscleGroup) bool {
	for _, m := range MuscleGroups {
		if m == g {
			return true
		}
	}
	return false
}

// Equipment is the kind of equipment an exercise requires.
type Equipment string

const (
	EquipmentBodyweight   Equipment = "Bodyweight"
	EquipmentMachine      Equipment = "Machine"
	EquipmentCableMachine Equipment = "Cable Machine"
	EquipmentDumbbell     Equipment = "Dumbbell"
	EquipmentBar          Equipment = "BAR"
	EquipmentOther        Equipment = "Other"
)

// EquipmentKinds lists every valid equipment value.
var EquipmentKinds = []Equipment{
	EquipmentBodyweight, EquipmentMachine, EquipmentCableMachine,
	EquipmentDumbbell, EquipmentBar, EquipmentOther,
}

// ValidEquipment reports whether e is a known equipment kind.
func ValidEquipment(e Equipment) bool {
	for _, k := range EquipmentKinds {
		if k == e {
			return true
		}
	}
	return false
}

// Exercise is a single exercise definition in the library.
type Exercise struct {
	Owned        `bson:",inline"`
	Name         string        `bson:"name" json:"name"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	MuscleGroups []MuscleGroup `bson:"muscleGroups" json:"muscleGroups"` // non-empty
	Equipment    Equipment     `bson:"equipment" json:"equipment"`
}
