package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classdeck/classdeck-api/internal/models"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
)

func protectedRouter(validate ValidateFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireLogin(validate), func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.SessionClaims)
		c.JSON(http.StatusOK, gin.H{"user": claims.Username})
	})
	return r
}

func TestRequireLoginMissingToken(t *testing.T) {
	r := protectedRouter(func(c *gin.Context, token string) (*models.SessionClaims, error) {
		t.Fatal("validate should not be called without a token")
		return nil, nil
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), "please log in to continue")
}

func TestRequireLoginInvalidToken(t *testing.T) {
	r := protectedRouter(func(c *gin.Context, token string) (*models.SessionClaims, error) {
		return nil, appErrors.ErrUnauthorized
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestRequireLoginValidToken(t *testing.T) {
	r := protectedRouter(func(c *gin.Context, token string) (*models.SessionClaims, error) {
		assert.Equal(t, "good-token", token)
		return &models.SessionClaims{UserID: "u1", Username: "alice", Role: models.RoleStudent}, nil
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestRequireLoginMalformedHeader(t *testing.T) {
	r := protectedRouter(func(c *gin.Context, token string) (*models.SessionClaims, error) {
		t.Fatal("validate should not be called for a malformed header")
		return nil, nil
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
}
