package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/off-days")

	group.POST("", authMiddleware, h.Set)
	group.DELETE("/:id", authMiddleware, h.Remove)

	// Read side is public so clients can see why a date is blocked.
	g.GET("/vendors/:id/off-days", h.ListByVendor)
}
