package handler

import (
	"net/http"
	"strconv"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/middleware"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/scope"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
)

// requireIdentity fetches the caller set by the auth middleware, writing
// the error response itself when absent.
func requireIdentity(c *gin.Context) (scope.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
	}
	return id, ok
}

// querySubject reads the optional userId query parameter admins use to
// target another user on reads. Returns 0 when absent or malformed.
func querySubject(c *gin.Context) int64 {
	raw := c.Query("userId")
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// pathInt parses a numeric path segment, writing the error response on
// failure.
func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid "+name)
		return 0, false
	}
	return v, true
}
