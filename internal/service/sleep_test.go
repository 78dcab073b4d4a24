package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishap29/Lifestyle-Coach/internal"
)

// seedSleep writes entries straight into the store, oldest first.
func seedSleep(t *testing.T, store *memStore, user *internal.User, now time.Time, hours []float64, qualities []int) {
	t.Helper()
	doc := internal.NewSleepDocument()
	for i := range hours {
		doc.SleepLogs = append(doc.SleepLogs, internal.SleepEntry{
			ID:      "seed",
			Date:    now.AddDate(0, 0, -(len(hours) - i)),
			Hours:   hours[i],
			Quality: qualities[i],
		})
	}
	require.NoError(t, store.SaveSleep(context.Background(), user.ID, doc))
}

func TestLogSleepAppendsAndPersists(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	coach := newTestCoach(store, now)
	user := testUser()

	entry, err := coach.LogSleep(context.Background(), user, &SleepLogRequest{Hours: 7.5, Quality: 85, Notes: "Good day"})
	require.NoError(t, err)
	assert.Equal(t, 7.5, entry.Hours)
	assert.Equal(t, now, entry.Date)

	entries, err := coach.Entries(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 85, entries[0].Quality)
	assert.Equal(t, "Good day", entries[0].Notes)

	_, err = coach.LogSleep(context.Background(), user, &SleepLogRequest{Hours: 6, Quality: 70})
	require.NoError(t, err)
	entries, err = coach.Entries(context.Background(), user)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLogSleepAcceptsOutOfRangeValues(t *testing.T) {
	// Mirrors the source permissiveness: no upper-bound validation.
	store := newMemStore()
	coach := newTestCoach(store, time.Now())

	entry, err := coach.LogSleep(context.Background(), testUser(), &SleepLogRequest{Hours: 30, Quality: 150})
	require.NoError(t, err)
	assert.Equal(t, 150, entry.Quality)
}

func TestLogSleepPropagatesSaveFault(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("disk full")
	coach := newTestCoach(store, time.Now())

	_, err := coach.LogSleep(context.Background(), testUser(), &SleepLogRequest{Hours: 8, Quality: 80})
	assert.ErrorContains(t, err, "disk full")
}

func TestWeeklyReportEmpty(t *testing.T) {
	store := newMemStore()
	coach := newTestCoach(store, time.Now())

	report, err := coach.WeeklyReport(context.Background(), testUser())
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestWeeklyReportZeroVariation(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()
	seedSleep(t, store, user, now, []float64{7, 7, 7}, []int{80, 90, 85})
	coach := newTestCoach(store, now)

	report, err := coach.WeeklyReport(context.Background(), user)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 7.0, report.AvgHours)
	assert.Equal(t, 85, report.AvgQuality)
	assert.Equal(t, 100.0, report.ConsistencyScore)
}

func TestWeeklyReportConsistencyPenalizesVariation(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()
	seedSleep(t, store, user, now, []float64{8, 4}, []int{80, 60})
	coach := newTestCoach(store, now)

	report, err := coach.WeeklyReport(context.Background(), user)
	require.NoError(t, err)
	require.NotNil(t, report)
	// mean |Δhours| = 4 -> 100 - 40
	assert.Equal(t, 60.0, report.ConsistencyScore)
	assert.Equal(t, 6.0, report.AvgHours)
	assert.Equal(t, 70, report.AvgQuality)
}

func TestWeeklyReportSingleEntryConsistencyIsZero(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()
	seedSleep(t, store, user, now, []float64{7.5}, []int{90})
	coach := newTestCoach(store, now)

	report, err := coach.WeeklyReport(context.Background(), user)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 0.0, report.ConsistencyScore)
}

func TestWeeklyReportWindowIsExclusiveTrailingSevenDays(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()

	doc := internal.NewSleepDocument()
	doc.SleepLogs = []internal.SleepEntry{
		{ID: "old", Date: now.AddDate(0, 0, -8), Hours: 2, Quality: 10},
		{ID: "boundary", Date: now.AddDate(0, 0, -7), Hours: 3, Quality: 20}, // exactly 7 days: excluded
		{ID: "in", Date: now.AddDate(0, 0, -1), Hours: 8, Quality: 90},
	}
	require.NoError(t, store.SaveSleep(context.Background(), user.ID, doc))
	coach := newTestCoach(store, now)

	report, err := coach.WeeklyReport(context.Background(), user)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 8.0, report.AvgHours)
	assert.Equal(t, 90, report.AvgQuality)
}

func TestWeeklyReportIdempotent(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()
	seedSleep(t, store, user, now, []float64{7.5, 6, 8}, []int{85, 70, 90})
	coach := newTestCoach(store, now)

	first, err := coach.WeeklyReport(context.Background(), user)
	require.NoError(t, err)
	second, err := coach.WeeklyReport(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSetGoalOverwrites(t *testing.T) {
	store := newMemStore()
	coach := newTestCoach(store, time.Now())
	user := testUser()

	require.NoError(t, coach.SetGoal(context.Background(), user, "hours", 8))
	require.NoError(t, coach.SetGoal(context.Background(), user, "hours", 7))

	doc, result, err := store.LoadSleep(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "existing", result.String())
	assert.Equal(t, map[string]float64{"hours": 7}, doc.Goals)
}

func TestCheckGoalsUnmet(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()
	seedSleep(t, store, user, now, []float64{7, 8}, []int{80, 80})
	coach := newTestCoach(store, now)

	require.NoError(t, coach.SetGoal(context.Background(), user, "hours", 8))

	results, err := coach.CheckGoals(context.Background(), user)
	require.NoError(t, err)
	require.Contains(t, results, "hours")
	assert.Equal(t, "unmet", results["hours"].Status)
	assert.Equal(t, -0.5, results["hours"].Difference)
}

func TestCheckGoalsMet(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()
	seedSleep(t, store, user, now, []float64{8, 8}, []int{90, 80})
	coach := newTestCoach(store, now)

	require.NoError(t, coach.SetGoal(context.Background(), user, "hours", 8))
	require.NoError(t, coach.SetGoal(context.Background(), user, "quality", 80))

	results, err := coach.CheckGoals(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "met", results["hours"].Status)
	assert.Equal(t, 0.0, results["hours"].Difference)
	assert.Equal(t, "met", results["quality"].Status)
	assert.Equal(t, 5.0, results["quality"].Difference)
}

func TestCheckGoalsEmptyWithoutGoalsOrReport(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	user := testUser()
	coach := newTestCoach(store, now)

	// No goals, no entries.
	results, err := coach.CheckGoals(context.Background(), user)
	require.NoError(t, err)
	assert.Empty(t, results)

	// Goals set but nothing in the weekly window.
	require.NoError(t, coach.SetGoal(context.Background(), user, "hours", 8))
	results, err = coach.CheckGoals(context.Background(), user)
	require.NoError(t, err)
	assert.Empty(t, results)
}
