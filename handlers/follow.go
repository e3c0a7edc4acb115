package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"instagram/models"
	"instagram/store"
)

func (h *Handler) Follow(c *gin.Context) {
	ctx := c.Request.Context()
	b := readBody(c)
	if !b.present("user_from_id") || !b.present("user_to_id") {
		msg(c, http.StatusBadRequest, "user_from_id and user_to_id are required")
		return
	}
	from, okFrom := b.id("user_from_id")
	to, okTo := b.id("user_to_id")
	if b.same("user_from_id", "user_to_id") || (okFrom && okTo && from == to) {
		msg(c, http.StatusBadRequest, "you cannot follow yourself")
		return
	}

	fromOK, err := h.userExists(ctx, b, "user_from_id")
	if err != nil {
		c.Error(err)
		return
	}
	toOK, err := h.userExists(ctx, b, "user_to_id")
	if err != nil {
		c.Error(err)
		return
	}
	if !fromOK || !toOK {
		msg(c, http.StatusNotFound, "user(s) not found")
		return
	}

	_, err = h.store.GetFollow(ctx, from, to)
	switch {
	case err == nil:
		msg(c, http.StatusConflict, "already following")
		return
	case !errors.Is(err, store.ErrNotFound):
		c.Error(err)
		return
	}

	f := &models.Follower{UserFromID: from, UserToID: to}
	if err := h.store.CreateFollow(ctx, f); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, f.Serialize())
}

func (h *Handler) Unfollow(c *gin.Context) {
	ctx := c.Request.Context()
	b := readBody(c)
	if !b.present("user_from_id") || !b.present("user_to_id") {
		msg(c, http.StatusBadRequest, "user_from_id and user_to_id are required")
		return
	}

	from, okFrom := b.id("user_from_id")
	to, okTo := b.id("user_to_id")
	if !okFrom || !okTo {
		msg(c, http.StatusNotFound, "follow relationship not found")
		return
	}

	f, err := h.store.GetFollow(ctx, from, to)
	if errors.Is(err, store.ErrNotFound) {
		msg(c, http.StatusNotFound, "follow relationship not found")
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.store.DeleteFollow(ctx, f); err != nil {
		c.Error(err)
		return
	}
	msg(c, http.StatusOK, "Unfollow OK")
}
