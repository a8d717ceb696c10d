package routes

import (
	"net/http"

	"enlistco_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole API under /api/v1.
func RegisterRoutes(engine *gin.Engine, h *handlers.AppHandlers) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	h.User.RegisterRoutes(api)
	h.Post.RegisterRoutes(api)
	h.Application.RegisterRoutes(api)
	h.Notice.RegisterRoutes(api)
	h.Payment.RegisterRoutes(api)
}
