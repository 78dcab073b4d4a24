package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mishap29/Lifestyle-Coach/internal"
	"github.com/mishap29/Lifestyle-Coach/internal/metrics"
	"github.com/mishap29/Lifestyle-Coach/internal/service"
)

type GeneralAdviceRequest struct {
	Question string `json:"question" binding:"required"`
}

type CoachingRequest struct {
	Issue    string `json:"issue,omitempty"`
	Question string `json:"question" binding:"required"`
}

// PostGeneralAdvice assembles the user's recent sleep and exercise picture
// into a context block and asks the coach for advice grounded in the fact
// base. Generation failures come back as a degraded result, never an error.
func PostGeneralAdvice(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var req GeneralAdviceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request: question required")
			return
		}

		entries, err := app.Sleep().Entries(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sleep entries")
			return
		}
		summary, err := app.Exercise().WeeklySummary(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch exercise summary")
			return
		}

		result := app.Advice().GeneralAdvice(c.Request.Context(), buildLifestyleContext(entries, summary, req.Question))
		if result.Degraded {
			metrics.AdviceDegraded.Inc()
			app.Logger().Warnf("advice degraded for user %s: %v", user.ID, result.Err)
		}
		HandleSuccess(c, app.Logger(), result, nil)
	}
}

// PostCoaching asks for issue-specific sleep coaching from the last few
// entries. Unknown issue keys still produce a prompt with a fallback marker.
func PostCoaching(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var req CoachingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request: question required")
			return
		}
		if req.Issue == "" {
			req.Issue = "poor_sleep_quality"
		}

		entries, err := app.Sleep().Entries(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sleep entries")
			return
		}

		result := app.Advice().Coaching(c.Request.Context(), entries, req.Issue, req.Question)
		if result.Degraded {
			metrics.AdviceDegraded.Inc()
			app.Logger().Warnf("coaching degraded for user %s: %v", user.ID, result.Err)
		}
		HandleSuccess(c, app.Logger(), result, nil)
	}
}

// buildLifestyleContext renders recent logs the way the coach expects them:
// one sleep line per entry, then the weekly exercise totals, then the question.
func buildLifestyleContext(entries []internal.SleepEntry, summary *service.WeeklySummary, question string) string {
	recent := entries
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}
	sleepLines := make([]string, 0, len(recent))
	for _, e := range recent {
		sleepLines = append(sleepLines, fmt.Sprintf("%s: %gh sleep, %d/100 quality", e.Date.Format("2006-01-02"), e.Hours, e.Quality))
	}

	var totalHours float64
	var sessions int
	breakdown := map[string]int{}
	if summary != nil {
		totalHours = summary.TotalHours
		sessions = summary.Sessions
		breakdown = summary.ActivityBreakdown
	}
	exerciseContext := fmt.Sprintf(
		"Total exercise hours this week: %g\nNumber of sessions: %d\nActivities: %v",
		totalHours, sessions, breakdown)

	return "User Sleep Data (Last 7 Days):\n" + strings.Join(sleepLines, "\n") + "\n\n" +
		"User Exercise Data (Last 7 Days):\n" + exerciseContext + "\n\n" +
		"Analyze how sleep and exercise might be interacting, and give the user personalized advice.\n\n" +
		"Question: " + question
}
