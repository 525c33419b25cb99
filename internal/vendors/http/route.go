package http

import (
	"github.com/gin-gonic/gin"
	"github.com/wedmarket/wedding-vendor-backend/internal/auth"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/vendors")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// === Authenticated Routes ===
	group.POST("", authMiddleware, auth.RequireRole(auth.RoleVendor, auth.RoleAdmin), h.Create)
	group.PATCH("/:id", authMiddleware, h.Update)
	group.POST("/:id/verify", authMiddleware, auth.RequireRole(auth.RoleAdmin), h.Verify)
}
