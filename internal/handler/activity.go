package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves the trackable activity catalog.
type ActivityHandler struct {
	Activities store.ActivityStore
}

func NewActivityHandler(activities store.ActivityStore) *ActivityHandler {
	return &ActivityHandler{Activities: activities}
}

// List returns all active activities ordered by category then name.
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.Activities.ListActive(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list activities")
		return
	}
	util.Success(c, util.Response{"activities": activities})
}

type createActivityReq struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// Create adds a new activity to the catalog.
func (h *ActivityHandler) Create(c *gin.Context) {
	var req createActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name and category are required")
		return
	}

	activity := models.Activity{
		Name:     strings.TrimSpace(req.Name),
		Category: strings.TrimSpace(req.Category),
		IsActive: true,
	}
	if err := h.Activities.Create(c.Request.Context(), &activity); err != nil {
		if errors.Is(err, store.ErrConflict) {
			util.Error(c, http.StatusConflict, util.CodeConflict, "activity already exists")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create activity")
		}
		return
	}

	util.Success(c, util.Response{"activity": activity})
}
