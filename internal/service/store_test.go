package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mishap29/Lifestyle-Coach/internal"
	"github.com/mishap29/Lifestyle-Coach/internal/storage"
)

// memStore keeps documents as JSON blobs, matching the whole-document
// round-trip behavior of the real backends.
type memStore struct {
	docs    map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{docs: map[string][]byte{}}
}

func (m *memStore) LoadSleep(ctx context.Context, userID string) (*internal.SleepDocument, storage.LoadResult, error) {
	doc := internal.NewSleepDocument()
	raw, ok := m.docs["sleep/"+userID]
	if !ok {
		return doc, storage.Fresh, nil
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return internal.NewSleepDocument(), storage.Fresh, nil
	}
	return doc, storage.Existing, nil
}

func (m *memStore) SaveSleep(ctx context.Context, userID string, doc *internal.SleepDocument) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.docs["sleep/"+userID] = raw
	return nil
}

func (m *memStore) LoadExercise(ctx context.Context, userID string) (*internal.ExerciseDocument, storage.LoadResult, error) {
	doc := internal.NewExerciseDocument()
	raw, ok := m.docs["exercise/"+userID]
	if !ok {
		return doc, storage.Fresh, nil
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return internal.NewExerciseDocument(), storage.Fresh, nil
	}
	return doc, storage.Existing, nil
}

func (m *memStore) SaveExercise(ctx context.Context, userID string, doc *internal.ExerciseDocument) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.docs["exercise/"+userID] = raw
	return nil
}

var _ storage.SleepStore = (*memStore)(nil)
var _ storage.ExerciseStore = (*memStore)(nil)

func newTestCoach(store storage.SleepStore, now time.Time) *SleepCoach {
	c := NewSleepCoach(store, internal.NopLogger{})
	c.now = func() time.Time { return now }
	return c
}

func newTestPlanner(store storage.ExerciseStore, now time.Time) *ExercisePlanner {
	p := NewExercisePlanner(store, internal.NopLogger{})
	p.now = func() time.Time { return now }
	return p
}

func testUser() *internal.User {
	return &internal.User{ID: "u1", Token: "MOCK-TOKEN", Name: "Test User"}
}
