package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classdeck/classdeck-api/internal/middleware"
	"github.com/classdeck/classdeck-api/internal/models"
	"github.com/classdeck/classdeck-api/internal/service"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
)

type submissionServiceMock struct {
	submitResp *models.Submission
	submitErr  error
	listResp   *service.TaskSubmissions
	listErr    error
	exportData []byte
	exportType string
	exportErr  error
	submitCall bool
	lastUpload service.FileUpload
}

func (m *submissionServiceMock) Submit(ctx context.Context, taskID string, actor *models.SessionClaims, upload service.FileUpload) (*models.Submission, error) {
	m.submitCall = true
	m.lastUpload = upload
	return m.submitResp, m.submitErr
}

func (m *submissionServiceMock) ListForTask(ctx context.Context, taskID string) (*service.TaskSubmissions, error) {
	return m.listResp, m.listErr
}

func (m *submissionServiceMock) Export(ctx context.Context, taskID, format string) ([]byte, string, error) {
	return m.exportData, m.exportType, m.exportErr
}

func studentContext(w *httptest.ResponseRecorder) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextUserKey, &models.SessionClaims{UserID: "u1", Username: "alice", Role: models.RoleStudent})
	return c
}

func TestSubmitHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &submissionServiceMock{submitResp: &models.Submission{ID: "s1", Filename: "Essay_alice_20260915_120000.pdf"}}
	handler := NewSubmissionHandler(mockSvc, nil)

	w := httptest.NewRecorder()
	c := studentContext(w)
	c.Request = multipartRequest(t, "/tasks/t1/submit", nil, "file", "essay.pdf", []byte("my work"))
	c.Params = gin.Params{{Key: "id", Value: "t1"}}

	handler.Submit(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.submitCall)
	assert.Equal(t, "essay.pdf", mockSvc.lastUpload.Filename)
	assert.Contains(t, w.Body.String(), "submission received")
}

func TestSubmitHandlerMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &submissionServiceMock{}
	handler := NewSubmissionHandler(mockSvc, nil)

	w := httptest.NewRecorder()
	c := studentContext(w)
	c.Request = multipartRequest(t, "/tasks/t1/submit", map[string]string{"note": "forgot the file"}, "", "", nil)
	c.Params = gin.Params{{Key: "id", Value: "t1"}}

	handler.Submit(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.submitCall)
	assert.Contains(t, w.Body.String(), "required")
}

func TestSubmitHandlerRejectsExtension(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &submissionServiceMock{}
	handler := NewSubmissionHandler(mockSvc, nil)

	w := httptest.NewRecorder()
	c := studentContext(w)
	c.Request = multipartRequest(t, "/tasks/t1/submit", nil, "file", "payload.exe", []byte("nope"))
	c.Params = gin.Params{{Key: "id", Value: "t1"}}

	handler.Submit(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.submitCall)
	assert.Contains(t, w.Body.String(), "extension")
}

func TestSubmitHandlerUnknownTask(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &submissionServiceMock{submitErr: appErrors.Clone(appErrors.ErrNotFound, "task not found")}
	handler := NewSubmissionHandler(mockSvc, nil)

	w := httptest.NewRecorder()
	c := studentContext(w)
	c.Request = multipartRequest(t, "/tasks/missing/submit", nil, "file", "essay.pdf", []byte("my work"))
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Submit(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListForTaskHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &submissionServiceMock{listResp: &service.TaskSubmissions{
		Task: &models.Task{ID: "t1", Title: "Essay"},
		Submissions: []models.SubmissionWithUser{
			{Submission: models.Submission{ID: "s1", Filename: "Essay_bob_20260915_130000.zip"}, Username: "bob"},
		},
	}}
	handler := NewSubmissionHandler(mockSvc, nil)

	w := httptest.NewRecorder()
	c, _ := adminContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/tasks/t1/submissions", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "t1"}}

	handler.ListForTask(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob")
}

func TestExportHandlerCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &submissionServiceMock{exportData: []byte("Username,Filename\n"), exportType: "text/csv"}
	handler := NewSubmissionHandler(mockSvc, nil)

	w := httptest.NewRecorder()
	c, _ := adminContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/tasks/t1/submissions/export?format=csv", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "t1"}}

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "task-t1-submissions.csv")
}

func TestExportHandlerPDFDisposition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &submissionServiceMock{exportData: []byte("%PDF-1.4"), exportType: "application/pdf"}
	handler := NewSubmissionHandler(mockSvc, nil)

	w := httptest.NewRecorder()
	c, _ := adminContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/tasks/t1/submissions/export?format=pdf", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "t1"}}

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "task-t1-submissions.pdf")
}
