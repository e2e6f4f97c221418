package middleware

import (
	"bytes"
	"io"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"
	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditMiddleware records one row per authenticated mutating request.
// Reads are not audited. Failures to write the record never fail the
// request itself.
func AuditMiddleware(audit store.AuditStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		mutating := c.Request.Method != "GET" && c.Request.Method != "HEAD"

		var bodyBytes []byte
		if mutating && c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		if !mutating {
			return
		}
		id, ok := CurrentIdentity(c)
		if !ok {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
			action += " " + string(bodyBytes)
		}

		userID := id.UserID
		record := models.AuditRecord{
			UserID:    &userID,
			RequestID: requestID,
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IPAddress: c.ClientIP(),
		}
		_ = audit.Create(c.Request.Context(), &record)
	}
}
