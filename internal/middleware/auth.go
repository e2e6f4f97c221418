package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/scope"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/util"

	"github.com/gin-gonic/gin"
)

const identityKey = "currentIdentity"

// AuthMiddleware verifies the bearer token and places the caller's
// identity in the request context. The user row is re-checked so a
// deactivated account cannot keep using an old token.
func AuthMiddleware(jwtSecret string, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "session expired, please log in again")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				util.Error(c, http.StatusUnauthorized, util.CodeAuth, "account no longer exists")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to verify account")
			}
			c.Abort()
			return
		}
		if !user.IsActive {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "account is deactivated")
			c.Abort()
			return
		}

		c.Set(identityKey, scope.Identity{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller set by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (scope.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return scope.Identity{}, false
	}
	id, ok := v.(scope.Identity)
	return id, ok
}

// ManagerOnly rejects callers whose role cannot act on behalf of other
// users. Must run after AuthMiddleware.
func ManagerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
			c.Abort()
			return
		}
		if !id.Role.CanActForOthers() {
			util.Error(c, http.StatusForbidden, util.CodeForbidden, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
