package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classdeck/classdeck-api/internal/forms"
	"github.com/classdeck/classdeck-api/internal/models"
	"github.com/classdeck/classdeck-api/internal/service"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
	"github.com/classdeck/classdeck-api/pkg/response"
)

type submissionService interface {
	Submit(ctx context.Context, taskID string, actor *models.SessionClaims, upload service.FileUpload) (*models.Submission, error)
	ListForTask(ctx context.Context, taskID string) (*service.TaskSubmissions, error)
	Export(ctx context.Context, taskID, format string) ([]byte, string, error)
}

// SubmissionHandler wires upload and review endpoints.
type SubmissionHandler struct {
	service submissionService
	metrics *service.MetricsService
}

// NewSubmissionHandler creates a new handler.
func NewSubmissionHandler(svc submissionService, metrics *service.MetricsService) *SubmissionHandler {
	return &SubmissionHandler{service: svc, metrics: metrics}
}

// Submit godoc
// @Summary Submit work for a task
// @Description Upload a submission file for the given task
// @Tags Submissions
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Task ID"
// @Param file formData file true "Submission file"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tasks/{id}/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil {
		response.ValidationFailed(c, []forms.FieldError{{Field: "file", Message: "this field is required"}})
		return
	}
	if !forms.SubmissionExtAllowed(fileHeader.Filename) {
		response.ValidationFailed(c, []forms.FieldError{{Field: "file", Message: "extension must be one of pdf, docx, zip, txt"}})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open file"))
		return
	}
	defer src.Close() //nolint:errcheck

	submission, err := h.service.Submit(c.Request.Context(), c.Param("id"), claimsFromContext(c), service.FileUpload{
		Filename: fileHeader.Filename,
		Content:  src,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveUpload(fileHeader.Size)
	}
	response.JSON(c, http.StatusCreated, submission, map[string]interface{}{"flash": "submission received"})
}

// ListForTask godoc
// @Summary Review submissions
// @Description List all submissions for a task, newest first (admin only)
// @Tags Submissions
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tasks/{id}/submissions [get]
func (h *SubmissionHandler) ListForTask(c *gin.Context) {
	listing, err := h.service.ListForTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, listing)
}

// Export godoc
// @Summary Export review sheet
// @Description Download the submission listing as CSV or PDF (admin only)
// @Tags Submissions
// @Produce octet-stream
// @Param id path string true "Task ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /tasks/{id}/submissions/export [get]
func (h *SubmissionHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	data, contentType, err := h.service.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	ext := "csv"
	if contentType == "application/pdf" {
		ext = "pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="task-%s-submissions.%s"`, c.Param("id"), ext))
	c.Data(http.StatusOK, contentType, data)
}
