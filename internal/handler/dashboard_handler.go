package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classdeck/classdeck-api/internal/models"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
	"github.com/classdeck/classdeck-api/pkg/response"
)

// DashboardHandler serves the landing view for authenticated users.
type DashboardHandler struct {
	tasks         taskService
	announcements announcementService
}

// NewDashboardHandler creates the handler.
func NewDashboardHandler(tasks taskService, announcements announcementService) *DashboardHandler {
	return &DashboardHandler{tasks: tasks, announcements: announcements}
}

// Show godoc
// @Summary Dashboard
// @Description Returns the current principal with the task and announcement feeds
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router / [get]
func (h *DashboardHandler) Show(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	announcements, err := h.announcements.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	info := models.UserInfo{ID: claims.UserID, Username: claims.Username, Role: claims.Role}
	response.JSON(c, http.StatusOK, gin.H{
		"user":          info,
		"tasks":         tasks,
		"announcements": announcements,
	})
}
