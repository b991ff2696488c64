package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/classdeck/classdeck-api/internal/models"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
)

type mockAnnouncementRepo struct {
	created []models.Announcement
	listing []models.Announcement
}

func (m *mockAnnouncementRepo) Create(ctx context.Context, announcement *models.Announcement) error {
	if announcement.ID == "" {
		announcement.ID = "generated"
	}
	m.created = append(m.created, *announcement)
	return nil
}

func (m *mockAnnouncementRepo) List(ctx context.Context) ([]models.Announcement, error) {
	return m.listing, nil
}

func TestAnnouncementCreatePublishes(t *testing.T) {
	repo := &mockAnnouncementRepo{}
	svc := NewAnnouncementService(repo, zap.NewNop())

	announcement, err := svc.Create(context.Background(), "Exam week", "Starts Monday", adminClaims())
	require.NoError(t, err)
	assert.Equal(t, "admin1", announcement.CreatedBy)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Exam week", repo.created[0].Title)
}

func TestAnnouncementCreateRequiresActor(t *testing.T) {
	svc := NewAnnouncementService(&mockAnnouncementRepo{}, zap.NewNop())

	_, err := svc.Create(context.Background(), "Exam week", "Starts Monday", nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized, err)
}

func TestAnnouncementList(t *testing.T) {
	repo := &mockAnnouncementRepo{listing: []models.Announcement{
		{ID: "a2", Title: "Second"},
		{ID: "a1", Title: "First"},
	}}
	svc := NewAnnouncementService(repo, zap.NewNop())

	announcements, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, announcements, 2)
	assert.Equal(t, "Second", announcements[0].Title)
}
