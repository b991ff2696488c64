package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/classdeck/classdeck-api/internal/forms"
	"github.com/classdeck/classdeck-api/internal/models"
	"github.com/classdeck/classdeck-api/internal/service"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
	"github.com/classdeck/classdeck-api/pkg/response"
)

type taskService interface {
	Create(ctx context.Context, req service.CreateTaskRequest, actor *models.SessionClaims) (*models.Task, error)
	Get(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
}

// TaskHandler wires task publication and listing endpoints.
type TaskHandler struct {
	service  taskService
	validate *validator.Validate
}

// NewTaskHandler creates a new handler.
func NewTaskHandler(svc taskService, validate *validator.Validate) *TaskHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &TaskHandler{service: svc, validate: validate}
}

// ShowCreate returns the task form shape for rendering.
func (h *TaskHandler) ShowCreate(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"form": "task", "fields": []string{"title", "description", "deadline", "attachment"}})
}

// ShowSubmit returns the submission form for an existing task, or 404
// when the task does not exist.
func (h *TaskHandler) ShowSubmit(c *gin.Context) {
	task, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"form": "submission", "fields": []string{"file"}, "task": task})
}

// Create godoc
// @Summary Publish task
// @Description Create a task with an optional attachment (admin only)
// @Tags Tasks
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param deadline formData string false "Deadline (YYYY-MM-DD HH:MM:SS)"
// @Param attachment formData file false "Attachment"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var form forms.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid task payload"))
		return
	}
	fieldErrs := forms.Validate(h.validate, form)

	var attachment *service.FileUpload
	if fileHeader, err := c.FormFile("attachment"); err == nil && fileHeader != nil {
		if !forms.AttachmentExtAllowed(fileHeader.Filename) {
			fieldErrs = append(fieldErrs, forms.FieldError{Field: "attachment", Message: "extension must be one of pdf, doc, docx, zip, txt"})
		} else {
			src, openErr := fileHeader.Open()
			if openErr != nil {
				response.Error(c, appErrors.Wrap(openErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open attachment"))
				return
			}
			defer src.Close() //nolint:errcheck
			attachment = &service.FileUpload{Filename: fileHeader.Filename, Content: src}
		}
	}

	if fieldErrs != nil {
		response.ValidationFailed(c, fieldErrs)
		return
	}

	var deadline *time.Time
	if form.Deadline != "" {
		parsed, err := time.Parse(forms.DeadlineLayout, form.Deadline)
		if err != nil {
			response.ValidationFailed(c, []forms.FieldError{{Field: "deadline", Message: "must match format YYYY-MM-DD HH:MM:SS"}})
			return
		}
		deadline = &parsed
	}

	task, err := h.service.Create(c.Request.Context(), service.CreateTaskRequest{
		Title:       form.Title,
		Description: form.Description,
		Deadline:    deadline,
		Attachment:  attachment,
	}, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, task, map[string]interface{}{"flash": "task published"})
}

// List godoc
// @Summary List tasks
// @Description Returns all tasks ordered by deadline descending
// @Tags Tasks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tasks)
}
