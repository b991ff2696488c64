package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/classdeck/classdeck-api/internal/models"
)

// SubmissionRepository provides database access for task submissions.
type SubmissionRepository struct {
	db *sqlx.DB
}

// NewSubmissionRepository creates the repository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a new submission row. Repeated submissions by the same
// user to the same task are allowed.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO submissions (id, task_id, user_id, filename, created_at) VALUES (:id, :task_id, :user_id, :filename, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, submission); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

// ListByTask returns all submissions for a task joined with the
// submitting user, newest first.
func (r *SubmissionRepository) ListByTask(ctx context.Context, taskID string) ([]models.SubmissionWithUser, error) {
	const query = `SELECT s.id, s.task_id, s.user_id, s.filename, s.created_at, u.username, u.email
FROM submissions s
JOIN users u ON u.id = s.user_id
WHERE s.task_id = $1
ORDER BY s.created_at DESC`
	var submissions []models.SubmissionWithUser
	if err := r.db.SelectContext(ctx, &submissions, query, taskID); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, nil
}
