package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/scope"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
)

const weekDateLayout = "2006-01-02"

// WeeklyHandler covers weekly activity submissions. Week boundaries are
// client-supplied dates: the server validates format and ordering but
// does not impose a week convention of its own.
type WeeklyHandler struct {
	Weekly store.WeeklyStore
}

func NewWeeklyHandler(weekly store.WeeklyStore) *WeeklyHandler {
	return &WeeklyHandler{Weekly: weekly}
}

// ListForWeek returns the subject's entries for the week starting at the
// given date, joined with activity names.
func (h *WeeklyHandler) ListForWeek(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	weekStart := c.Param("weekStart")
	if _, err := time.Parse(weekDateLayout, weekStart); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "week start must be a YYYY-MM-DD date")
		return
	}

	subject := scope.EffectiveSubject(id, querySubject(c))
	entries, err := h.Weekly.ListForWeek(c.Request.Context(), subject, weekStart)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list weekly activities")
		return
	}
	util.Success(c, util.Response{"activities": entries})
}

type upsertWeeklyReq struct {
	UserID        int64  `json:"user_id"`
	ActivityID    int64  `json:"activity_id" binding:"required"`
	WeekStartDate string `json:"week_start_date" binding:"required"`
	WeekEndDate   string `json:"week_end_date" binding:"required"`
	CountValue    *int   `json:"count_value" binding:"required"`
}

// Upsert records how many times an activity was performed in a week.
// Re-submitting the same week overwrites the count and refreshes the
// entry timestamp.
func (h *WeeklyHandler) Upsert(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req upsertWeeklyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "activity_id, week dates and count_value are required")
		return
	}

	start, err := time.Parse(weekDateLayout, req.WeekStartDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "week_start_date must be a YYYY-MM-DD date")
		return
	}
	end, err := time.Parse(weekDateLayout, req.WeekEndDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "week_end_date must be a YYYY-MM-DD date")
		return
	}
	if end.Before(start) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "week_end_date must not be before week_start_date")
		return
	}
	if *req.CountValue < 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "count_value must not be negative")
		return
	}

	entry := models.WeeklyActivityEntry{
		UserID:        scope.EffectiveSubject(id, req.UserID),
		ActivityID:    req.ActivityID,
		WeekStartDate: req.WeekStartDate,
		WeekEndDate:   req.WeekEndDate,
		CountValue:    *req.CountValue,
	}
	if err := h.Weekly.Upsert(c.Request.Context(), &entry); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "unknown activity")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save weekly activity")
		}
		return
	}

	util.Success(c, util.Response{"activity": entry})
}
