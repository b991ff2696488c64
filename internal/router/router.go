package router

import (
	"github.com/gin-gonic/gin"

	"github.com/classdeck/classdeck-api/internal/handler"
	"github.com/classdeck/classdeck-api/internal/middleware"
	"github.com/classdeck/classdeck-api/internal/models"
	"github.com/classdeck/classdeck-api/internal/service"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	Dashboard     *handler.DashboardHandler
	Tasks         *handler.TaskHandler
	Submissions   *handler.SubmissionHandler
	Announcements *handler.AnnouncementHandler
	Metrics       *handler.MetricsHandler
}

// Register mounts all routes on the engine. Authenticated routes sit
// behind the session middleware; admin routes additionally behind the
// admin gate.
func Register(r *gin.Engine, h Handlers, auth *service.AuthService) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Health)
	r.GET("/metrics", h.Metrics.Prometheus)

	r.GET("/login", h.Auth.ShowLogin)
	r.POST("/login", h.Auth.Login)
	r.GET("/register", h.Auth.ShowRegister)
	r.POST("/register", h.Auth.Register)

	validate := func(c *gin.Context, token string) (*models.SessionClaims, error) {
		return auth.ValidateToken(c.Request.Context(), token)
	}

	loggedIn := r.Group("", middleware.RequireLogin(validate))
	{
		loggedIn.GET("/", h.Dashboard.Show)
		loggedIn.GET("/logout", h.Auth.Logout)
		loggedIn.GET("/tasks", h.Tasks.List)
		loggedIn.GET("/tasks/:id/submit", h.Tasks.ShowSubmit)
		loggedIn.POST("/tasks/:id/submit", h.Submissions.Submit)
		loggedIn.GET("/announcements", h.Announcements.List)

		admin := loggedIn.Group("", middleware.RequireAdmin())
		{
			admin.GET("/tasks/create", h.Tasks.ShowCreate)
			admin.POST("/tasks/create", h.Tasks.Create)
			admin.GET("/tasks/:id/submissions", h.Submissions.ListForTask)
			admin.GET("/tasks/:id/submissions/export", h.Submissions.Export)
			admin.GET("/announcements/create", h.Announcements.ShowCreate)
			admin.POST("/announcements/create", h.Announcements.Create)
		}
	}
}
