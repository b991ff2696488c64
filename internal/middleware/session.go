package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/classdeck/classdeck-api/internal/models"
	"github.com/classdeck/classdeck-api/pkg/response"
)

// ContextUserKey is the gin context key storing session claims.
const ContextUserKey = "currentUser"

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// ValidateFunc resolves a bearer token into session claims.
type ValidateFunc func(c *gin.Context, token string) (*models.SessionClaims, error)

// RequireLogin protects routes: requests without a valid, unrevoked
// session are redirected to the login route. There is no partial
// access.
func RequireLogin(validate ValidateFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Redirect(c, LoginPath, "please log in to continue")
			c.Abort()
			return
		}

		claims, err := validate(c, token)
		if err != nil {
			response.Redirect(c, LoginPath, "please log in to continue")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
