package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response messages. Business outcomes (no rights, not found) are 200s
// carrying only a msg; transport failures use the matching status code.
const (
	msgWelcome = "Welcome to Go Blog REST API!"

	msgTokenMissing = "Token is missing!"
	msgTokenInvalid = "Token is invalid!"
	msgNoRights     = "No rights to this action!"
	msgCouldNotAuth = "Could not verify"

	msgUserNotFound = "User not found!"
	msgUserList     = "List of all users!"
	msgUserInfo     = "User data information!"
	msgUserCreated  = "New user created!"
	msgUserPromoted = "Admins rights are set for the user!"
	msgUserDeleted  = "The user has been deleted!"

	msgPostNotFound = "Post not found!"
	msgPostList     = "List of all posts!"
	msgOwnPostList  = "List of user`s own posts!"
	msgPostInfo     = "Post data information!"
	msgPostCreated  = "New post created!"
	msgPostChanged  = "Post was changed!"
	msgPostDeleted  = "Post was deleted!"

	msgInternal        = "Internal server error!"
	errInvalidBodyPref = "invalid body: "

	basicRealm = `Basic realm="Login required!"`
)

// msg writes a 200 response with only a message.
func msg(c *gin.Context, text string) {
	c.JSON(http.StatusOK, gin.H{"msg": text})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"msg": userMsg})
}

// bindJSONOrBadRequest binds the request body into dst and writes a 400 on failure.
// Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}
