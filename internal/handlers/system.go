package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Welcome message
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string  "msg"
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	msg(c, msgWelcome)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
