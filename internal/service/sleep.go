package service

import (
	"context"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mishap29/Lifestyle-Coach/internal"
	"github.com/mishap29/Lifestyle-Coach/internal/storage"
)

var validate = validator.New()

// SleepLogRequest carries a new sleep entry. Hours and quality are accepted
// as-is without range checks, mirroring the source system's permissiveness;
// tightening this needs product confirmation first.
type SleepLogRequest struct {
	Hours   float64 `json:"hours"`
	Quality int     `json:"quality"`
	Notes   string  `json:"notes,omitempty"`
}

// WeeklyReport aggregates the trailing 7-day window of sleep entries. The
// consistency score is a heuristic (0-100, penalizing night-to-night variation
// in duration), not a validated clinical metric.
type WeeklyReport struct {
	AvgHours         float64 `json:"avg_hours"`
	AvgQuality       int     `json:"avg_quality"`
	ConsistencyScore float64 `json:"consistency_score"`
}

type GoalStatus struct {
	Status     string  `json:"status"`
	Difference float64 `json:"difference"`
}

// SleepCoach logs sleep entries for a user, computes weekly statistics and
// tracks goals. Each call loads the user's document, mutates it and writes the
// whole document back; there is no cached state between calls.
type SleepCoach struct {
	store  storage.SleepStore
	logger internal.Logger
	now    func() time.Time
}

func NewSleepCoach(store storage.SleepStore, logger internal.Logger) *SleepCoach {
	return &SleepCoach{store: store, logger: logger, now: time.Now}
}

func (c *SleepCoach) LogSleep(ctx context.Context, user *internal.User, req *SleepLogRequest) (*internal.SleepEntry, error) {
	doc, result, err := c.store.LoadSleep(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if result == storage.Fresh {
		c.logger.Debugf("no sleep document for %s yet, starting fresh", user.ID)
	}

	entry := internal.SleepEntry{
		ID:      uuid.NewString(),
		Date:    c.now(),
		Hours:   req.Hours,
		Quality: req.Quality,
		Notes:   req.Notes,
	}
	doc.SleepLogs = append(doc.SleepLogs, entry)

	if err := c.store.SaveSleep(ctx, user.ID, doc); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Entries returns the user's full sleep history in append (chronological) order.
func (c *SleepCoach) Entries(ctx context.Context, user *internal.User) ([]internal.SleepEntry, error) {
	doc, _, err := c.store.LoadSleep(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return doc.SleepLogs, nil
}

// WeeklyReport computes statistics over entries from the trailing 7 days
// (lower bound exclusive). Returns nil when the window is empty.
func (c *SleepCoach) WeeklyReport(ctx context.Context, user *internal.User) (*WeeklyReport, error) {
	doc, _, err := c.store.LoadSleep(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	cutoff := c.now().AddDate(0, 0, -7)
	var week []internal.SleepEntry
	for _, e := range doc.SleepLogs {
		if e.Date.After(cutoff) {
			week = append(week, e)
		}
	}
	if len(week) == 0 {
		return nil, nil
	}

	var totalHours float64
	var totalQuality int
	for _, e := range week {
		totalHours += e.Hours
		totalQuality += e.Quality
	}

	return &WeeklyReport{
		AvgHours:         round1(totalHours / float64(len(week))),
		AvgQuality:       int(float64(totalQuality) / float64(len(week))),
		ConsistencyScore: consistencyScore(week),
	}, nil
}

// consistencyScore scores night-to-night stability of sleep duration on a
// 0-100 scale: 100 - 10 * mean(|Δhours|) over consecutive entries in
// chronological order, floored at 0. Fewer than two entries score 0.
func consistencyScore(entries []internal.SleepEntry) float64 {
	if len(entries) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(entries); i++ {
		sum += math.Abs(entries[i].Hours - entries[i-1].Hours)
	}
	mean := sum / float64(len(entries)-1)
	return math.Max(0, 100-mean*10)
}

// SetGoal overwrites the target for a goal type. No history is kept.
func (c *SleepCoach) SetGoal(ctx context.Context, user *internal.User, goalType string, target float64) error {
	doc, _, err := c.store.LoadSleep(ctx, user.ID)
	if err != nil {
		return err
	}
	doc.Goals[goalType] = target
	return c.store.SaveSleep(ctx, user.ID, doc)
}

// CheckGoals compares the weekly report against the stored "hours" and
// "quality" goals. Returns an empty map when there is no report or no goals.
func (c *SleepCoach) CheckGoals(ctx context.Context, user *internal.User) (map[string]GoalStatus, error) {
	results := map[string]GoalStatus{}

	doc, _, err := c.store.LoadSleep(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(doc.Goals) == 0 {
		return results, nil
	}

	report, err := c.WeeklyReport(ctx, user)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return results, nil
	}

	actuals := map[string]float64{
		"hours":   report.AvgHours,
		"quality": float64(report.AvgQuality),
	}
	for _, goalType := range []string{"hours", "quality"} {
		target, ok := doc.Goals[goalType]
		if !ok {
			continue
		}
		difference := round1(actuals[goalType] - target)
		status := "unmet"
		if difference >= 0 {
			status = "met"
		}
		results[goalType] = GoalStatus{Status: status, Difference: difference}
	}
	return results, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
