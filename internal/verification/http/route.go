package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/verification")
	group.Use(authMiddleware)

	group.POST("/issue", h.Issue)
	group.POST("/check", h.Check)
}
