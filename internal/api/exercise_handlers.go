package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mishap29/Lifestyle-Coach/internal"
	"github.com/mishap29/Lifestyle-Coach/internal/service"
)

func PostExercise(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body service.ExerciseLogRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateExerciseLogRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := app.Exercise().LogExercise(c.Request.Context(), user, &body)
		if err != nil {
			if _, normErr := service.NormalizeActivityType(body.ActivityType); normErr != nil {
				HandleError(c, app.Logger(), err, 400, "Invalid activity type")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to save exercise entry")
			return
		}

		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

func GetExerciseSummary(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		summary, err := app.Exercise().WeeklySummary(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute weekly summary")
			return
		}
		if summary == nil {
			HandleSuccess(c, app.Logger(), gin.H{}, nil)
			return
		}

		HandleSuccess(c, app.Logger(), summary, nil)
	}
}

func GetExerciseIntervals(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		intervals, err := app.Exercise().ExerciseIntervals(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute exercise intervals")
			return
		}

		HandleSuccess(c, app.Logger(), intervals, nil)
	}
}
