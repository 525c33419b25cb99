package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	// Availability is public: clients browse vendor calendars before
	// signing up.
	g.GET("/vendors/:id/availability", h.Month)
	g.GET("/vendors/:id/calendar.ics", h.CalendarFeed)
}
