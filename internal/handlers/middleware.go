package handlers

import (
	"errors"
	"net/http"
	"time"

	"blog_api/internal/models"
	"blog_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	tokenHeader    = "x-access-token"
	currentUserKey = "currentUser"
)

// tokenMiddleware resolves the x-access-token header to a user and stores it
// in the Gin context. Any failure aborts with 401 before the handler runs.
func (h *Handler) tokenMiddleware(c *gin.Context) {
	token := c.GetHeader(tokenHeader)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msgTokenMissing})
		return
	}

	user, err := h.services.Authenticate(c.Request.Context(), token)
	if err != nil {
		if h.log != nil && !errors.Is(err, service.ErrInvalidToken) {
			h.log.Errorw("token_user_lookup_failed", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msgTokenInvalid})
		return
	}

	c.Set(currentUserKey, user)
	c.Next()
}

// currentUser returns the acting user set by tokenMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

// requireAdmin answers "no rights" unless the acting user is an admin.
// Returns false if the request was already handled.
func requireAdmin(c *gin.Context) bool {
	u, ok := currentUser(c)
	if !ok || !u.Admin {
		msg(c, msgNoRights)
		return false
	}
	return true
}

// requestLogger logs one line per request after it completes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("request_completed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
		"bytes", c.Writer.Size(),
		"client_ip", c.ClientIP(),
	)
}
