package handler

import (
	"net/http"
	"time"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/report"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the role-dependent landing view.
type DashboardHandler struct {
	Aggregator *report.Aggregator
}

func NewDashboardHandler(agg *report.Aggregator) *DashboardHandler {
	return &DashboardHandler{Aggregator: agg}
}

// Get resolves the caller's dashboard. Agents get their own current
// month and year; admins and managers get the office rollup. The period
// always comes from the server clock.
func (h *DashboardHandler) Get(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	view, err := h.Aggregator.Dashboard(c.Request.Context(), id, time.Now())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to build dashboard")
		return
	}

	if view.Office != nil {
		util.Success(c, util.Response{"role": "office", "office": view.Office})
		return
	}
	util.Success(c, util.Response{"role": "agent", "agent": view.Agent})
}
