package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KevinUnadkat/social-media-reply/internal/httpapi/handlers"
	"github.com/KevinUnadkat/social-media-reply/internal/httpapi/middleware"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "method not allowed"})
	})

	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.POST("/reply", h.CreateReply)

	return r
}
