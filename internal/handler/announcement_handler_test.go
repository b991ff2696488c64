package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classdeck/classdeck-api/internal/models"
)

type announcementServiceMock struct {
	createResp *models.Announcement
	createErr  error
	listResp   []models.Announcement
	listErr    error
	createCall bool
}

func (m *announcementServiceMock) Create(ctx context.Context, title, content string, actor *models.SessionClaims) (*models.Announcement, error) {
	m.createCall = true
	return m.createResp, m.createErr
}

func (m *announcementServiceMock) List(ctx context.Context) ([]models.Announcement, error) {
	return m.listResp, m.listErr
}

func TestAnnouncementCreateHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &announcementServiceMock{createResp: &models.Announcement{ID: "a1", Title: "Exam week"}}
	handler := NewAnnouncementHandler(mockSvc, nil)

	w := httptest.NewRecorder()
	c, _ := adminContext(w)
	c.Request = formRequest(http.MethodPost, "/announcements/create", url.Values{
		"title":   {"Exam week"},
		"content": {"Starts Monday"},
	})

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.createCall)
	assert.Contains(t, w.Body.String(), "announcement published")
}

func TestAnnouncementCreateHandlerMissingContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &announcementServiceMock{}
	handler := NewAnnouncementHandler(mockSvc, nil)

	w := httptest.NewRecorder()
	c, _ := adminContext(w)
	c.Request = formRequest(http.MethodPost, "/announcements/create", url.Values{"title": {"Exam week"}})

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.createCall)
	assert.Contains(t, w.Body.String(), "content")
}

func TestAnnouncementListHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &announcementServiceMock{listResp: []models.Announcement{{ID: "a1", Title: "Exam week"}}}
	handler := NewAnnouncementHandler(mockSvc, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/announcements", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Exam week")
}
