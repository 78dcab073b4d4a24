package internal

import "time"

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

type SleepEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Hours   float64   `json:"hours"`
	Quality int       `json:"quality"` // 0–100 scale
	Notes   string    `json:"notes,omitempty"`
}

type ExerciseEntry struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	ActivityType  string    `json:"activity_type"` // title-cased member of ActivityTypes
	DurationHours float64   `json:"duration_hours"`
	Notes         string    `json:"notes,omitempty"`
}

// ActivityTypes is the closed set of accepted exercise activities. Matching is
// case-insensitive on input; entries are stored title-cased.
var ActivityTypes = []string{"Cardio", "Walking", "Running", "Fitness Class", "Other"}

// SleepDocument is the persisted unit for one user's sleep data. Entries are
// append-only in chronological order; goals map a goal type to a numeric
// target and are overwritten on re-set.
type SleepDocument struct {
	SleepLogs []SleepEntry       `json:"sleep_logs"`
	Goals     map[string]float64 `json:"goals"`
}

// ExerciseDocument is the persisted unit for one user's exercise data.
type ExerciseDocument struct {
	ExerciseLogs []ExerciseEntry `json:"exercise_logs"`
}

func NewSleepDocument() *SleepDocument {
	return &SleepDocument{SleepLogs: []SleepEntry{}, Goals: map[string]float64{}}
}

func NewExerciseDocument() *ExerciseDocument {
	return &ExerciseDocument{ExerciseLogs: []ExerciseEntry{}}
}
