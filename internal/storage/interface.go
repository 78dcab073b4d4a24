package storage

import (
	"context"

	"github.com/mishap29/Lifestyle-Coach/internal"
)

// LoadResult tells the caller whether a load found previously saved data.
// Missing or unreadable stored content is not an error: both degrade to a
// fresh empty document, but the distinction is worth logging.
type LoadResult int

const (
	Fresh LoadResult = iota
	Existing
)

func (r LoadResult) String() string {
	if r == Existing {
		return "existing"
	}
	return "fresh"
}

// SleepStore persists one sleep document per user. Every save rewrites the
// whole document; there are no partial updates.
type SleepStore interface {
	LoadSleep(ctx context.Context, userID string) (*internal.SleepDocument, LoadResult, error)
	SaveSleep(ctx context.Context, userID string, doc *internal.SleepDocument) error
}

// ExerciseStore persists one exercise document per user.
type ExerciseStore interface {
	LoadExercise(ctx context.Context, userID string) (*internal.ExerciseDocument, LoadResult, error)
	SaveExercise(ctx context.Context, userID string, doc *internal.ExerciseDocument) error
}
