package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/classdeck/classdeck-api/internal/models"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
)

type mockUserRepo struct {
	users map[string]models.User
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := m.users[username]; ok {
		return &u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.users == nil {
		m.users = make(map[string]models.User)
	}
	if user.ID == "" {
		user.ID = "generated"
	}
	m.users[user.Username] = *user
	return nil
}

type mockSessionStore struct {
	revoked map[string]time.Duration
}

func (m *mockSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if m.revoked == nil {
		m.revoked = make(map[string]time.Duration)
	}
	m.revoked[tokenID] = ttl
	return nil
}

func (m *mockSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := m.revoked[tokenID]
	return ok, nil
}

func newTestAuthService() (*AuthService, *mockUserRepo, *mockSessionStore) {
	repo := &mockUserRepo{}
	sessions := &mockSessionStore{}
	svc := NewAuthService(repo, sessions, zap.NewNop(), AuthConfig{
		Secret: "test-secret",
		TTL:    time.Hour,
		Issuer: "classdeck-test",
	})
	return svc, repo, sessions
}

func seedUser(t *testing.T, repo *mockUserRepo, username, password string, role models.UserRole) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{ID: "u-" + username, Username: username, Email: username + "@example.com", PasswordHash: string(hash), Role: role}
	if repo.users == nil {
		repo.users = make(map[string]models.User)
	}
	repo.users[username] = user
	return user
}

func TestRegisterCreatesStudent(t *testing.T) {
	svc, repo, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
	assert.Contains(t, repo.users, "alice")
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "alice", "secret1", models.RoleStudent)

	res, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, "alice", res.User.Username)

	claims, err := svc.ValidateToken(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-alice", claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "alice", "secret1", models.RoleStudent)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials, err)
}

func TestLoginErrorDoesNotRevealAccountExistence(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "alice", "secret1", models.RoleStudent)

	_, unknownErr := svc.Login(context.Background(), "ghost", "whatever")
	_, wrongErr := svc.Login(context.Background(), "alice", "wrong")
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, repo, sessions := newTestAuthService()
	seedUser(t, repo, "alice", "secret1", models.RoleStudent)

	res, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))
	assert.Len(t, sessions.revoked, 1)

	_, err = svc.ValidateToken(context.Background(), res.Token)
	require.Error(t, err)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "alice", "secret1", models.RoleStudent)

	res, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))
	require.NoError(t, svc.Logout(context.Background(), claims))
}

func TestLogoutWithoutSession(t *testing.T) {
	svc, _, sessions := newTestAuthService()

	require.NoError(t, svc.Logout(context.Background(), nil))
	assert.Empty(t, sessions.revoked)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "alice", "secret1", models.RoleStudent)

	res, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), res.Token+"x")
	assert.Error(t, err)
}
