package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/documents")

	group.POST("", authMiddleware, h.Upload)
	group.DELETE("/:id", authMiddleware, h.Delete)

	// Serving requires auth; identity documents additionally enforce
	// ownership inside the handler.
	group.GET("/:id", authMiddleware, h.Serve)
	group.GET("/:id/thumbnail", authMiddleware, h.ServeThumbnail)

	g.GET("/vendors/:id/documents", h.ListByVendor)
}
