// Package forms declares the input shape of every HTML form the API
// accepts. Each form is a plain struct with validation tags; Validate
// evaluates them uniformly and returns structured field errors, so
// handlers can re-render the originating form without touching
// persistence or storage.
package forms

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DeadlineLayout is the fixed textual date-time pattern task deadlines
// are submitted in.
const DeadlineLayout = "2006-01-02 15:04:05"

// LoginForm carries login credentials.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm carries the registration fields.
type RegisterForm struct {
	Username string `form:"username" validate:"required,min=3,max=64"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6,max=128"`
	Confirm  string `form:"confirm" validate:"required,eqfield=Password"`
}

// TaskForm carries the task creation fields. The attachment arrives as
// a separate multipart file and is checked with AttachmentExtAllowed.
type TaskForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Deadline    string `form:"deadline" validate:"omitempty,datetime=2006-01-02 15:04:05"`
}

// AnnouncementForm carries the announcement creation fields.
type AnnouncementForm struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
}

// FieldError annotates a single form field with a validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	taskAttachmentExts = map[string]struct{}{"pdf": {}, "doc": {}, "docx": {}, "zip": {}, "txt": {}}
	submissionExts     = map[string]struct{}{"pdf": {}, "docx": {}, "zip": {}, "txt": {}}
)

// AttachmentExtAllowed reports whether a task attachment filename has
// an accepted extension (pdf, doc, docx, zip, txt).
func AttachmentExtAllowed(filename string) bool {
	return extAllowed(filename, taskAttachmentExts)
}

// SubmissionExtAllowed reports whether a submission filename has an
// accepted extension (pdf, docx, zip, txt).
func SubmissionExtAllowed(filename string) bool {
	return extAllowed(filename, submissionExts)
}

func extAllowed(filename string, allowed map[string]struct{}) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	_, ok := allowed[ext]
	return ok
}

// Validate evaluates a form against its declared rules. A nil slice
// means the form passed.
func Validate(v *validator.Validate, form interface{}) []FieldError {
	if v == nil {
		v = validator.New()
	}
	err := v.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	fieldErrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return fieldErrs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "eqfield":
		return "must match the password field"
	case "datetime":
		return "must match format YYYY-MM-DD HH:MM:SS"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
