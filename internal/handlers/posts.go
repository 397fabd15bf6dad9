package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"blog_api/internal/models"
	"blog_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating and changing a post. Any author field is ignored.
type postRequest struct {
	Title *string `json:"title" binding:"required"`
	Body  *string `json:"body" binding:"required"`
}

func (r postRequest) input() service.PostInput {
	return service.PostInput{Title: *r.Title, Body: *r.Body}
}

// PostRequest is an exported model for Swagger docs of the post payload.
type PostRequest struct {
	Title string `json:"title" example:"Hello"`
	Body  string `json:"body" example:"First post"`
}

// @Summary      List all posts
// @Description  Public. Every post regardless of author.
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "msg, all_posts"
// @Failure      500  {object}  map[string]string
// @Router       /post [get]
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.Posts.ListAll(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "posts_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msgPostList, "all_posts": posts})
}

// @Summary      List own posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "msg, all_own_posts"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /post/own [get]
// @Security     TokenAuth
func (h *Handler) listOwnPosts(c *gin.Context) {
	u, _ := currentUser(c)
	posts, err := h.services.Posts.ListOwn(c.Request.Context(), u.ID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "posts_list_own_failed", err, "public_id", u.PublicID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msgOwnPostList, "all_own_posts": posts})
}

// @Summary      Get post
// @Description  Only the author sees the post; anyone else gets "Post not found!".
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "Post id"
// @Success      200  {object}  map[string]interface{}  "msg, post"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /post/{id} [get]
// @Security     TokenAuth
func (h *Handler) getPost(c *gin.Context) {
	u, id, ok := h.ownedPostParams(c)
	if !ok {
		return
	}
	p, err := h.services.Posts.Get(c.Request.Context(), id, u.ID)
	if h.postFailed(c, err, "post_get_failed", id) {
		return
	}
	respondPost(c, msgPostInfo, p)
}

// @Summary      Create post
// @Description  The author is always the caller.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body  PostRequest  true  "Post payload"
// @Success      200  {object}  map[string]interface{}  "msg, post"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /post [post]
// @Security     TokenAuth
func (h *Handler) createPost(c *gin.Context) {
	u, _ := currentUser(c)
	var req postRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	p, err := h.services.Posts.Create(c.Request.Context(), u.ID, req.input())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "post_create_failed", err, "public_id", u.PublicID)
		return
	}
	respondPost(c, msgPostCreated, p)
}

// @Summary      Change post
// @Description  Replaces title and body of an own post. created_at is kept.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path  int          true  "Post id"
// @Param        body  body  PostRequest  true  "Post payload"
// @Success      200  {object}  map[string]interface{}  "msg, post"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /post/{id} [put]
// @Security     TokenAuth
func (h *Handler) updatePost(c *gin.Context) {
	u, id, ok := h.ownedPostParams(c)
	if !ok {
		return
	}
	var req postRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	p, err := h.services.Posts.Update(c.Request.Context(), id, u.ID, req.input())
	if h.postFailed(c, err, "post_update_failed", id) {
		return
	}
	respondPost(c, msgPostChanged, p)
}

// @Summary      Delete post
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "Post id"
// @Success      200  {object}  map[string]interface{}  "msg, post"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /post/{id} [delete]
// @Security     TokenAuth
func (h *Handler) deletePost(c *gin.Context) {
	u, id, ok := h.ownedPostParams(c)
	if !ok {
		return
	}
	p, err := h.services.Posts.Delete(c.Request.Context(), id, u.ID)
	if h.postFailed(c, err, "post_delete_failed", id) {
		return
	}
	respondPost(c, msgPostDeleted, p)
}

// ownedPostParams returns the caller and the numeric :id. A non-numeric id
// is answered like a missing post.
func (h *Handler) ownedPostParams(c *gin.Context) (*models.User, int, bool) {
	u, _ := currentUser(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		msg(c, msgPostNotFound)
		return nil, 0, false
	}
	return u, id, true
}

func (h *Handler) postFailed(c *gin.Context, err error, logKey string, id int) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrPostNotFound):
		msg(c, msgPostNotFound)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, logKey, err, "post_id", id)
	}
	return true
}

func respondPost(c *gin.Context, text string, p *models.Post) {
	c.JSON(http.StatusOK, gin.H{"msg": text, "post": p})
}
