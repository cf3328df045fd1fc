package domain

// WorkoutExercise is one step of a workout. The exercise document is
// embedded in full rather than referenced by id, so a single fetch
// returns a composed workout. Embedded copies are not updated when the
// source exercise changes or is deleted.
type WorkoutExercise struct {
	Exercise Exercise `bson:"exercise" json:"exercise"`
	Sets     int      `bson:"sets" json:"sets"`
	Reps     int      `bson:"reps" json:"reps"`
	Weight   *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
}

// Workout is an ordered sequence of exercises with set/rep targets.
type Workout struct {
	Owned       `bson:",inline"`
	Name        string            `bson:"name" json:"name"`
	Description string            `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int               `bson:"duration" json:"duration"` // seconds
	Exercises   []WorkoutExercise `bson:"exercises" json:"exercises"`
}
