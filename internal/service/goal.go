package service

// GoalRequest sets a weekly target. Only "hours" and "quality" goals are
// accepted at the API; CheckGoals compares exactly these two.
type GoalRequest struct {
	Type   string  `json:"type" validate:"required,oneof=hours quality"`
	Target float64 `json:"target"`
}

func ValidateGoalRequest(req *GoalRequest) error {
	return validate.Struct(req)
}
