package api

import (
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/mishap29/Lifestyle-Coach/internal"
	"github.com/mishap29/Lifestyle-Coach/internal/service"
)

func PostSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body service.SleepLogRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		entry, err := app.Sleep().LogSleep(c.Request.Context(), user, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save sleep entry")
			return
		}

		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

func GetSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		entries, err := app.Sleep().Entries(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sleep entries")
			return
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Date.After(entries[j].Date)
		})

		HandleSuccess(c, app.Logger(), entries, nil)
	}
}

func GetSleepReport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		report, err := app.Sleep().WeeklyReport(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute weekly report")
			return
		}
		if report == nil {
			// No entries in the window is not an error, just an empty report.
			HandleSuccess(c, app.Logger(), gin.H{}, nil)
			return
		}

		HandleSuccess(c, app.Logger(), report, nil)
	}
}
