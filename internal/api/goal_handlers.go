package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mishap29/Lifestyle-Coach/internal"
	"github.com/mishap29/Lifestyle-Coach/internal/service"
)

func PostGoal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var req service.GoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request: type and target required")
			return
		}

		if err := service.ValidateGoalRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Goal validation failed")
			return
		}

		if err := app.Sleep().SetGoal(c.Request.Context(), user, req.Type, req.Target); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save goal")
			return
		}

		HandleSuccess(c, app.Logger(), req, nil)
	}
}

func GetGoalStatus(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		results, err := app.Sleep().CheckGoals(c.Request.Context(), user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to check goals")
			return
		}

		HandleSuccess(c, app.Logger(), results, nil)
	}
}
