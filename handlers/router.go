package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"instagram/middleware"
)

func errRouteNotFound() *APIError {
	return NewAPIError("Route not found", http.StatusNotFound)
}

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h *Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestLogger(log))
	r.Use(Recovery(log))
	r.Use(ErrorHandler(log))

	r.NoRoute(func(c *gin.Context) {
		c.Error(errRouteNotFound())
	})
	r.NoMethod(func(c *gin.Context) {
		c.Error(NewAPIError("Method not allowed", http.StatusMethodNotAllowed))
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/users", h.ListUsers)
	r.POST("/users", h.CreateUser)

	r.GET("/posts", h.ListPosts)
	r.POST("/posts", h.CreatePost)
	r.POST("/posts/:post_id/media", h.AddMedia)
	r.POST("/posts/:post_id/comments", h.AddComment)

	r.POST("/media/upload", h.UploadMedia)

	r.POST("/follow", h.Follow)
	r.DELETE("/follow", h.Unfollow)

	return r
}
