package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/classdeck/classdeck-api/internal/models"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
	"github.com/classdeck/classdeck-api/pkg/export"
	"github.com/classdeck/classdeck-api/pkg/storage"
)

type submissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	ListByTask(ctx context.Context, taskID string) ([]models.SubmissionWithUser, error)
}

type submissionTaskResolver interface {
	GetByID(ctx context.Context, id string) (*models.Task, error)
}

type tabularExporter interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfExporter interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// TaskSubmissions bundles a task with its review listing.
type TaskSubmissions struct {
	Task        *models.Task                `json:"task"`
	Submissions []models.SubmissionWithUser `json:"submissions"`
}

// SubmissionService handles student uploads and admin review.
type SubmissionService struct {
	repo    submissionRepository
	tasks   submissionTaskResolver
	storage fileStorage
	csv     tabularExporter
	pdf     pdfExporter
	logger  *zap.Logger
	now     func() time.Time
}

// NewSubmissionService constructs the service.
func NewSubmissionService(repo submissionRepository, tasks submissionTaskResolver, storage fileStorage, csv tabularExporter, pdf pdfExporter, logger *zap.Logger) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{
		repo:    repo,
		tasks:   tasks,
		storage: storage,
		csv:     csv,
		pdf:     pdf,
		logger:  logger,
		now:     time.Now,
	}
}

// Submit stores the uploaded file under a per-task directory and
// persists the submission row. The stored name is
// <title>_<username>_<YYYYmmdd_HHMMSS><ext> with the original
// extension casing kept; a same-second resubmission by the same user
// overwrites the earlier file.
func (s *SubmissionService) Submit(ctx context.Context, taskID string, actor *models.SessionClaims, upload FileUpload) (*models.Submission, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load task")
	}

	ext := filepath.Ext(storage.SecureFilename(upload.Filename))
	timestamp := s.now().Format("20060102_150405")
	title := storage.SecureFilename(task.Title)
	if title == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "task title yields no usable directory name")
	}
	filename := fmt.Sprintf("%s_%s_%s%s", title, actor.Username, timestamp, ext)

	if _, err := s.storage.SaveStream(filepath.Join(title, filename), upload.Content); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store submission")
	}

	submission := &models.Submission{
		TaskID:   task.ID,
		UserID:   actor.UserID,
		Filename: filename,
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record submission")
	}

	s.logger.Info("submission stored",
		zap.String("task_id", task.ID),
		zap.String("user_id", actor.UserID),
		zap.String("filename", filename),
	)
	return submission, nil
}

// ListForTask returns the task and its submissions for admin review,
// newest first.
func (s *SubmissionService) ListForTask(ctx context.Context, taskID string) (*TaskSubmissions, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load task")
	}

	submissions, err := s.repo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return &TaskSubmissions{Task: task, Submissions: submissions}, nil
}

// Export renders the review listing as a downloadable sheet. Supported
// formats are csv and pdf.
func (s *SubmissionService) Export(ctx context.Context, taskID, format string) ([]byte, string, error) {
	listing, err := s.ListForTask(ctx, taskID)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Username", "Filename", "Submitted At"},
		Rows:    make([]map[string]string, 0, len(listing.Submissions)),
	}
	for _, sub := range listing.Submissions {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Username":     sub.Username,
			"Filename":     sub.Filename,
			"Submitted At": sub.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	switch strings.ToLower(format) {
	case "csv", "":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return data, "text/csv", nil
	case "pdf":
		data, err := s.pdf.Render(dataset, listing.Task.Title)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return data, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
