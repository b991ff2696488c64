package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/classdeck/classdeck-api/internal/models"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
	"github.com/classdeck/classdeck-api/pkg/storage"
)

type taskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
}

type fileStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// FileUpload carries an uploaded file's name and content stream.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// CreateTaskRequest carries validated task creation input.
type CreateTaskRequest struct {
	Title       string
	Description string
	Deadline    *time.Time
	Attachment  *FileUpload
}

// TaskService handles task publication and listing.
type TaskService struct {
	repo    taskRepository
	storage fileStorage
	logger  *zap.Logger
}

// NewTaskService constructs the service.
func NewTaskService(repo taskRepository, storage fileStorage, logger *zap.Logger) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{repo: repo, storage: storage, logger: logger}
}

// Create persists a new task. An optional attachment is written to the
// upload root under its sanitized original name; a later attachment
// with the same sanitized name overwrites the earlier file. The task
// row carries no reference to the written file.
func (s *TaskService) Create(ctx context.Context, req CreateTaskRequest, actor *models.SessionClaims) (*models.Task, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}

	if req.Attachment != nil {
		filename := storage.SecureFilename(req.Attachment.Filename)
		if filename == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "attachment has no usable filename")
		}
		if _, err := s.storage.SaveStream(filename, req.Attachment.Content); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store attachment")
		}
		s.logger.Info("task attachment stored", zap.String("filename", filename))
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		CreatedBy:   actor.UserID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create task")
	}
	return task, nil
}

// Get returns a task by identifier.
func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load task")
	}
	return task, nil
}

// List returns all tasks ordered by deadline descending.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tasks")
	}
	return tasks, nil
}
