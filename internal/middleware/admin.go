package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/classdeck/classdeck-api/internal/models"
	"github.com/classdeck/classdeck-api/pkg/response"
)

// DashboardPath is where non-admin requests to admin routes are sent.
const DashboardPath = "/"

// RequireAdmin gates routes to administrator principals. A non-admin
// is redirected to the dashboard with a flash message rather than
// served a hard 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Redirect(c, LoginPath, "please log in to continue")
			c.Abort()
			return
		}
		claims := claimsValue.(*models.SessionClaims)

		if claims.Role != models.RoleAdmin {
			response.Redirect(c, DashboardPath, "only administrators may do that")
			c.Abort()
			return
		}

		c.Next()
	}
}
