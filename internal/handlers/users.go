package handlers

import (
	"errors"
	"net/http"

	"blog_api/internal/models"
	"blog_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Credentials payload for registration. Pointers distinguish "missing" from "empty".
type createUserRequest struct {
	Username *string `json:"username" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// CreateUserRequest is an exported model for Swagger docs of the registration payload.
type CreateUserRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw1"`
}

// @Summary      List users
// @Description  Admin only. Non-admins get {"msg":"No rights to this action!"} with status 200.
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "msg, all_users"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user [get]
// @Security     TokenAuth
func (h *Handler) listUsers(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg":       msgUserList,
		"all_users": models.NewUserResponses(users),
	})
}

// @Summary      Get user
// @Description  Admin only.
// @Tags         users
// @Produce      json
// @Param        public_id  path  string  true  "User public id"
// @Success      200  {object}  map[string]interface{}  "msg, user"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/{public_id} [get]
// @Security     TokenAuth
func (h *Handler) getUser(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	publicID := c.Param("public_id")
	u, err := h.services.Users.Get(c.Request.Context(), publicID)
	if h.userFailed(c, err, "user_get_failed", publicID) {
		return
	}
	h.respondUser(c, msgUserInfo, u)
}

// @Summary      Register user
// @Description  Open while bootstrap mode is on; otherwise admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  CreateUserRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "msg, user"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user [post]
func (h *Handler) createUser(c *gin.Context) {
	if !h.cfg.BootstrapMode && !requireAdmin(c) {
		return
	}
	var input createUserRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, err := h.services.Users.Register(c.Request.Context(), *input.Username, *input.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": errInvalidBodyPref + err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "user_create_failed", err, "username", *input.Username)
		return
	}
	h.respondUser(c, msgUserCreated, u)
}

// @Summary      Grant admin
// @Description  Sets admin=true on the target. Open while bootstrap mode is on; otherwise admin only.
// @Tags         users
// @Produce      json
// @Param        public_id  path  string  true  "User public id"
// @Success      200  {object}  map[string]interface{}  "msg, user"
// @Failure      500  {object}  map[string]string
// @Router       /user/{public_id} [put]
func (h *Handler) promoteUser(c *gin.Context) {
	if !h.cfg.BootstrapMode && !requireAdmin(c) {
		return
	}
	publicID := c.Param("public_id")
	u, err := h.services.Users.Promote(c.Request.Context(), publicID)
	if h.userFailed(c, err, "user_promote_failed", publicID) {
		return
	}
	h.respondUser(c, msgUserPromoted, u)
}

// @Summary      Delete user
// @Description  Admin only. The user's posts are removed too.
// @Tags         users
// @Produce      json
// @Param        public_id  path  string  true  "User public id"
// @Success      200  {object}  map[string]interface{}  "msg, user"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/{public_id} [delete]
// @Security     TokenAuth
func (h *Handler) deleteUser(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	publicID := c.Param("public_id")
	u, err := h.services.Users.Delete(c.Request.Context(), publicID)
	if h.userFailed(c, err, "user_delete_failed", publicID) {
		return
	}
	h.respondUser(c, msgUserDeleted, u)
}

// userFailed writes the not-found message or a 500 for err. Returns true if handled.
func (h *Handler) userFailed(c *gin.Context, err error, logKey, publicID string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrUserNotFound):
		msg(c, msgUserNotFound)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, logKey, err, "public_id", publicID)
	}
	return true
}

func (h *Handler) respondUser(c *gin.Context, text string, u *models.User) {
	c.JSON(http.StatusOK, gin.H{
		"msg":  text,
		"user": models.NewUserResponse(*u),
	})
}
