package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"instagram/models"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	out := make([]models.UserJSON, 0, len(users))
	for i := range users {
		out = append(out, users[i].Serialize())
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateUser(c *gin.Context) {
	b := readBody(c)
	if !b.present("username") || !b.present("email") {
		msg(c, http.StatusBadRequest, "username and email are required")
		return
	}

	u := &models.User{
		Username:  b.str("username"),
		Email:     b.str("email"),
		Firstname: b.optStr("firstname"),
		Lastname:  b.optStr("lastname"),
	}
	if err := h.store.CreateUser(c.Request.Context(), u); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, u.Serialize())
}
