package handler

import (
	"errors"
	"net/http"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/report"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/scope"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CommissionGoalHandler covers annual commission targets. Only the
// annual figure is ever stored; quarterly and monthly targets are
// derived on every read.
type CommissionGoalHandler struct {
	Goals store.CommissionGoalStore
}

func NewCommissionGoalHandler(goals store.CommissionGoalStore) *CommissionGoalHandler {
	return &CommissionGoalHandler{Goals: goals}
}

// GetForYear returns the subject's target for a year along with the
// derived figures. A user with no stored target gets a zero-valued goal
// rather than a 404, so clients can always render the panel.
func (h *CommissionGoalHandler) GetForYear(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	subject := scope.EffectiveSubject(id, querySubject(c))
	annual := decimal.Zero
	goal, err := h.Goals.GetForYear(c.Request.Context(), subject, year)
	switch {
	case err == nil:
		annual = goal.AnnualTarget
	case errors.Is(err, store.ErrNotFound):
		// zero placeholder
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load commission goal")
		return
	}

	util.Success(c, util.Response{"commission_goal": report.NewCommissionGoalView(subject, year, annual)})
}

type upsertCommissionGoalReq struct {
	UserID       int64           `json:"user_id"`
	Year         int             `json:"year" binding:"required"`
	AnnualTarget decimal.Decimal `json:"annual_target" binding:"required"`
}

// Upsert sets the subject's annual target for a year, overwriting any
// previous figure. The response carries the derived targets so callers
// never compute them client-side.
func (h *CommissionGoalHandler) Upsert(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req upsertCommissionGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "year and annual_target are required")
		return
	}
	if req.AnnualTarget.IsNegative() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "annual_target must not be negative")
		return
	}

	goal := models.GrossCommissionGoal{
		UserID:       scope.EffectiveSubject(id, req.UserID),
		Year:         req.Year,
		AnnualTarget: req.AnnualTarget,
	}
	if err := h.Goals.Upsert(c.Request.Context(), &goal); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "unknown user")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save commission goal")
		}
		return
	}

	util.Success(c, util.Response{"commission_goal": report.NewCommissionGoalView(goal.UserID, goal.Year, goal.AnnualTarget)})
}
