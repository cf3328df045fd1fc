package domain

// ProgramObjective is the training goal a program is built around.
type ProgramObjective string

const (
	ObjectiveHypertrophy ProgramObjective = "Hypertrophy"
	ObjectiveWeightLoss  ProgramObjective = "Weight Loss"
	ObjectiveEndurance   ProgramObjective = "Endurance"
	ObjectiveFlexibility ProgramObjective = "Flexibility"
	ObjectiveOther       ProgramObjective = "Other"
)

// ProgramObjectives lists every valid objective value.
var ProgramObjectives = []ProgramObjective{
	ObjectiveHypertrophy, ObjectiveWeightLoss, ObjectiveEndurance,
	ObjectiveFlexibility, ObjectiveOther,
}

// ValidProgramObjective reports whether o is a known objective.
func ValidProgramObjective(o ProgramObjective) bool {
	for _, v := range ProgramObjectives {
		if v == o {
			return true
		}
	}
	return false
}

// ProgramLevel is the experience level a program targets.
type ProgramLevel string

const (
	LevelBeginner     ProgramLevel = "Beginner"
	LevelIntermediate ProgramLevel = "Intermediate"
	LevelAdvanced     ProgramLevel = "Advanced"
)

// ProgramLevels lists every valid level value.
var ProgramLevels = []ProgramLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ValidProgramLevel reports whether l is a known level.
func ValidProgramLevel(l ProgramLevel) bool {
	for _, v := range ProgramLevels {
		if v == l {
			return true
		}
	}
	return false
}

// ProgramWorkout is one entry of a program schedule. Like workout
// exercises, the workout document is embedded in full by design.
type ProgramWorkout struct {
	Workout Workout `bson:"workout" json:"workout"`
	Order   int     `bson:"order" json:"order"`
	Focus   string  `bson:"focus,omitempty" json:"focus,omitempty"`
	Tips    string  `bson:"tips,omitempty" json:"tips,omitempty"`
}

// Program is a multi-week schedule of workouts.
type Program struct {
	Owned       `bson:",inline"`
	Name        string           `bson:"name" json:"name"`
	Description string           `bson:"description,omitempty" json:"description,omitempty"`
	Objective   ProgramObjective `bson:"objective" json:"objective"`
	Level       ProgramLevel     `bson:"level,omitempty" json:"level,omitempty"`
	Duration    int              `bson:"duration" json:"duration"` // weeks
	Frequency   *int             `bson:"frequency,omitempty" json:"frequency,omitempty"` // sessions per week
	Workouts    []ProgramWorkout `bson:"workouts" json:"workouts"`
}
