package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"instagram/models"
)

func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.store.ListPosts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	out := make([]models.PostJSON, 0, len(posts))
	for i := range posts {
		out = append(out, posts[i].Serialize())
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreatePost(c *gin.Context) {
	ctx := c.Request.Context()
	b := readBody(c)
	if !b.present("user_id") {
		msg(c, http.StatusBadRequest, "user_id is required")
		return
	}

	exists, err := h.userExists(ctx, b, "user_id")
	if err != nil {
		c.Error(err)
		return
	}
	if !exists {
		msg(c, http.StatusNotFound, "user not found")
		return
	}
	userID, _ := b.id("user_id")

	p := &models.Post{UserID: userID, Caption: b.optStr("caption")}
	if err := h.store.CreatePost(ctx, p); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p.Serialize())
}

func (h *Handler) AddMedia(c *gin.Context) {
	ctx := c.Request.Context()
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	b := readBody(c)

	exists, err := h.store.PostExists(ctx, postID)
	if err != nil {
		c.Error(err)
		return
	}
	if !exists {
		msg(c, http.StatusNotFound, "post not found")
		return
	}

	if !b.present("type") || !b.present("url") {
		msg(c, http.StatusBadRequest, "type and url are required")
		return
	}

	m := &models.Media{Type: b.str("type"), URL: b.str("url"), PostID: postID}
	if err := h.store.CreateMedia(ctx, m); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, m.Serialize())
}

func (h *Handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	b := readBody(c)

	exists, err := h.store.PostExists(ctx, postID)
	if err != nil {
		c.Error(err)
		return
	}
	if !exists {
		msg(c, http.StatusNotFound, "post not found")
		return
	}

	if !b.present("author_id") || !b.present("comment_text") {
		msg(c, http.StatusBadRequest, "author_id and comment_text are required")
		return
	}

	if exists, err = h.userExists(ctx, b, "author_id"); err != nil {
		c.Error(err)
		return
	}
	if !exists {
		msg(c, http.StatusNotFound, "author not found")
		return
	}
	authorID, _ := b.id("author_id")

	cm := &models.Comment{CommentText: b.str("comment_text"), AuthorID: authorID, PostID: postID}
	if err := h.store.CreateComment(ctx, cm); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, cm.Serialize())
}

// userExists resolves the id under key. Ids that cannot be parsed never exist.
func (h *Handler) userExists(ctx context.Context, b body, key string) (bool, error) {
	id, ok := b.id(key)
	if !ok {
		return false, nil
	}
	return h.store.UserExists(ctx, id)
}

// pathID parses an integer path segment. A non-integer segment behaves like
// an unmatched route.
func pathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.Error(errRouteNotFound())
		return 0, false
	}
	return uint(n), true
}
