package handler

import (
	"errors"
	"net/http"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/scope"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
)

// GoalHandler covers monthly activity goals. Reads and writes both run
// through scope.EffectiveSubject, so agents only ever touch their own
// rows no matter what subject the request names.
type GoalHandler struct {
	Goals store.GoalStore
}

func NewGoalHandler(goals store.GoalStore) *GoalHandler {
	return &GoalHandler{Goals: goals}
}

// ListForMonth returns the subject's goals for one month, joined with
// activity names. A month with no goals is an empty list, not an error.
func (h *GoalHandler) ListForMonth(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}
	month, ok := pathInt(c, "month")
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month must be between 1 and 12")
		return
	}

	subject := scope.EffectiveSubject(id, querySubject(c))
	goals, err := h.Goals.ListForMonth(c.Request.Context(), subject, year, month)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list goals")
		return
	}
	util.Success(c, util.Response{"goals": goals})
}

type upsertGoalReq struct {
	UserID     int64 `json:"user_id"`
	ActivityID int64 `json:"activity_id" binding:"required"`
	Year       int   `json:"year" binding:"required"`
	Month      int   `json:"month" binding:"required"`
	GoalValue  *int  `json:"goal_value" binding:"required"`
}

// Upsert sets the goal value for one (activity, year, month). Submitting
// the same period again overwrites the previous value in place.
func (h *GoalHandler) Upsert(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req upsertGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "activity_id, year, month and goal_value are required")
		return
	}
	if req.Month < 1 || req.Month > 12 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month must be between 1 and 12")
		return
	}
	if *req.GoalValue < 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "goal_value must not be negative")
		return
	}

	goal := models.MonthlyGoal{
		UserID:     scope.EffectiveSubject(id, req.UserID),
		ActivityID: req.ActivityID,
		Year:       req.Year,
		Month:      req.Month,
		GoalValue:  *req.GoalValue,
	}
	if err := h.Goals.Upsert(c.Request.Context(), &goal); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "unknown activity")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save goal")
		}
		return
	}

	util.Success(c, util.Response{"goal": goal})
}
