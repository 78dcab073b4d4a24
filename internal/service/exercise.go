package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mishap29/Lifestyle-Coach/internal"
	"github.com/mishap29/Lifestyle-Coach/internal/storage"
)

type ExerciseLogRequest struct {
	ActivityType  string  `json:"activity_type" validate:"required"`
	DurationHours float64 `json:"duration_hours" validate:"gte=0"`
	Notes         string  `json:"notes,omitempty"`
}

// WeeklySummary aggregates the trailing 7-day window of exercise entries.
// ActivityBreakdown counts sessions per activity type, not hours.
type WeeklySummary struct {
	TotalHours        float64        `json:"total_hours"`
	Sessions          int            `json:"sessions"`
	ActivityBreakdown map[string]int `json:"activity_breakdown"`
}

func ValidateExerciseLogRequest(req *ExerciseLogRequest) error {
	return validate.Struct(req)
}

// NormalizeActivityType matches the input case-insensitively against the
// accepted set and returns the canonical title-cased spelling. Anything
// outside the set is a rejected write.
func NormalizeActivityType(activity string) (string, error) {
	for _, a := range internal.ActivityTypes {
		if strings.EqualFold(a, strings.TrimSpace(activity)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("invalid activity type %q: choose from %s",
		activity, strings.Join(internal.ActivityTypes, ", "))
}

// ExercisePlanner logs exercise entries and computes summaries, with the same
// load-modify-save discipline as SleepCoach.
type ExercisePlanner struct {
	store  storage.ExerciseStore
	logger internal.Logger
	now    func() time.Time
}

func NewExercisePlanner(store storage.ExerciseStore, logger internal.Logger) *ExercisePlanner {
	return &ExercisePlanner{store: store, logger: logger, now: time.Now}
}

func (p *ExercisePlanner) LogExercise(ctx context.Context, user *internal.User, req *ExerciseLogRequest) (*internal.ExerciseEntry, error) {
	activity, err := NormalizeActivityType(req.ActivityType)
	if err != nil {
		return nil, err
	}

	doc, result, err := p.store.LoadExercise(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if result == storage.Fresh {
		p.logger.Debugf("no exercise document for %s yet, starting fresh", user.ID)
	}

	entry := internal.ExerciseEntry{
		ID:            uuid.NewString(),
		Date:          p.now(),
		ActivityType:  activity,
		DurationHours: round2(req.DurationHours),
		Notes:         req.Notes,
	}
	doc.ExerciseLogs = append(doc.ExerciseLogs, entry)

	if err := p.store.SaveExercise(ctx, user.ID, doc); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (p *ExercisePlanner) Entries(ctx context.Context, user *internal.User) ([]internal.ExerciseEntry, error) {
	doc, _, err := p.store.LoadExercise(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return doc.ExerciseLogs, nil
}

// WeeklySummary summarizes entries from the trailing 7 days (lower bound
// exclusive). Returns nil when the window is empty.
func (p *ExercisePlanner) WeeklySummary(ctx context.Context, user *internal.User) (*WeeklySummary, error) {
	doc, _, err := p.store.LoadExercise(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	cutoff := p.now().AddDate(0, 0, -7)
	summary := &WeeklySummary{ActivityBreakdown: map[string]int{}}
	var total float64
	for _, e := range doc.ExerciseLogs {
		if !e.Date.After(cutoff) {
			continue
		}
		total += e.DurationHours
		summary.Sessions++
		summary.ActivityBreakdown[e.ActivityType]++
	}
	if summary.Sessions == 0 {
		return nil, nil
	}
	summary.TotalHours = round2(total)
	return summary, nil
}

// ExerciseIntervals buckets every entry's duration over the FULL history into
// half-open intervals with inclusive upper bounds, so a 2.0h session lands in
// "0-2 hours". Unlike WeeklySummary this is intentionally not windowed.
func (p *ExercisePlanner) ExerciseIntervals(ctx context.Context, user *internal.User) (map[string]int, error) {
	doc, _, err := p.store.LoadExercise(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	intervals := map[string]int{}
	if len(doc.ExerciseLogs) == 0 {
		return intervals, nil
	}
	intervals["0-2 hours"] = 0
	intervals["2-4 hours"] = 0
	intervals["4-6 hours"] = 0
	intervals["6+ hours"] = 0

	for _, e := range doc.ExerciseLogs {
		switch {
		case e.DurationHours <= 2:
			intervals["0-2 hours"]++
		case e.DurationHours <= 4:
			intervals["2-4 hours"]++
		case e.DurationHours <= 6:
			intervals["4-6 hours"]++
		default:
			intervals["6+ hours"]++
		}
	}
	return intervals, nil
}
