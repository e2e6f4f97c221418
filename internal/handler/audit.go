package handler

import (
	"net/http"
	"strconv"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the audit trail to admins and managers.
type AuditHandler struct {
	Audit store.AuditStore
}

func NewAuditHandler(audit store.AuditStore) *AuditHandler {
	return &AuditHandler{Audit: audit}
}

// ListRecent returns the newest audit records, most recent first.
func (h *AuditHandler) ListRecent(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "limit must be a number")
			return
		}
		limit = parsed
	}

	records, err := h.Audit.ListRecent(c.Request.Context(), limit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list audit records")
		return
	}
	util.Success(c, util.Response{"records": records})
}
