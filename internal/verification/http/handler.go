package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wedmarket/wedding-vendor-backend/internal/auth"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/response"
	"github.com/wedmarket/wedding-vendor-backend/internal/verification"
)

type Handler struct {
	service verification.Service
}

func NewHandler(service verification.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Issue(c *gin.Context) {
	var body IssueCodeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Issue(c.Request.Context(), auth.GetUserID(c), body.Channel); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "verification code sent"})
}

func (h *Handler) Check(c *gin.Context) {
	var body CheckCodeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Check(c.Request.Context(), auth.GetUserID(c), body.Channel, body.Code); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "verified"})
}
