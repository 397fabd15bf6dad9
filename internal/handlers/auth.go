package handlers

import (
	"errors"
	"net/http"

	"blog_api/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Log in
// @Description  Exchanges HTTP basic credentials for a bearer token valid for 60 minutes. Send it back in the x-access-token header.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string  "token"
// @Failure      401  {string}  string             "Could not verify"
// @Failure      500  {object}  map[string]string
// @Router       /login [get]
// @Security     BasicAuth
func (h *Handler) login(c *gin.Context) {
	username, password, ok := c.Request.BasicAuth()
	if !ok || username == "" || password == "" {
		h.couldNotVerify(c)
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			if h.log != nil {
				h.log.Infow("auth_login_failed", "username", username)
			}
			h.couldNotVerify(c)
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "auth_login_error", err, "username", username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) couldNotVerify(c *gin.Context) {
	c.Header("WWW-Authenticate", basicRealm)
	c.String(http.StatusUnauthorized, msgCouldNotAuth)
}
