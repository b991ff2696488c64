package models

import "time"

// Submission records one uploaded artifact for a task. A user may
// submit multiple times to the same task.
type Submission struct {
	ID        string    `db:"id" json:"id"`
	TaskID    string    `db:"task_id" json:"task_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Filename  string    `db:"filename" json:"filename"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SubmissionWithUser joins a submission with the submitting user for
// the admin review listing.
type SubmissionWithUser struct {
	Submission
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
}
