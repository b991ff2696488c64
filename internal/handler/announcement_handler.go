package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/classdeck/classdeck-api/internal/forms"
	"github.com/classdeck/classdeck-api/internal/models"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
	"github.com/classdeck/classdeck-api/pkg/response"
)

type announcementService interface {
	Create(ctx context.Context, title, content string, actor *models.SessionClaims) (*models.Announcement, error)
	List(ctx context.Context) ([]models.Announcement, error)
}

// AnnouncementHandler wires announcement endpoints.
type AnnouncementHandler struct {
	service  announcementService
	validate *validator.Validate
}

// NewAnnouncementHandler creates a new handler.
func NewAnnouncementHandler(svc announcementService, validate *validator.Validate) *AnnouncementHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &AnnouncementHandler{service: svc, validate: validate}
}

// ShowCreate returns the announcement form shape for rendering.
func (h *AnnouncementHandler) ShowCreate(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"form": "announcement", "fields": []string{"title", "content"}})
}

// Create godoc
// @Summary Publish announcement
// @Description Create a broadcast announcement (admin only)
// @Tags Announcements
// @Accept x-www-form-urlencoded
// @Produce json
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var form forms.AnnouncementForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}
	if fieldErrs := forms.Validate(h.validate, form); fieldErrs != nil {
		response.ValidationFailed(c, fieldErrs)
		return
	}

	announcement, err := h.service.Create(c.Request.Context(), form.Title, form.Content, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, announcement, map[string]interface{}{"flash": "announcement published"})
}

// List godoc
// @Summary List announcements
// @Description Returns all announcements, newest first
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, announcements)
}
