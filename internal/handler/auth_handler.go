package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/classdeck/classdeck-api/internal/forms"
	"github.com/classdeck/classdeck-api/internal/middleware"
	"github.com/classdeck/classdeck-api/internal/models"
	"github.com/classdeck/classdeck-api/internal/service"
	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
	"github.com/classdeck/classdeck-api/pkg/response"
)

type authService interface {
	Register(ctx context.Context, req service.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context, claims *models.SessionClaims) error
}

// AuthHandler wires the login, register and logout endpoints.
type AuthHandler struct {
	service  authService
	validate *validator.Validate
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService, validate *validator.Validate) *AuthHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &AuthHandler{service: svc, validate: validate}
}

// ShowLogin returns the login form shape for rendering.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"form": "login", "fields": []string{"username", "password"}})
}

// ShowRegister returns the registration form shape for rendering.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"form": "register", "fields": []string{"username", "email", "password", "confirm"}})
}

// Login godoc
// @Summary Authenticate user
// @Description Verify username and password and issue a session token
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	if fieldErrs := forms.Validate(h.validate, form); fieldErrs != nil {
		response.ValidationFailed(c, fieldErrs)
		return
	}

	res, err := h.service.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Register godoc
// @Summary Create account
// @Description Register a new student account
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param confirm formData string true "Password confirmation"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid register payload"))
		return
	}
	if fieldErrs := forms.Validate(h.validate, form); fieldErrs != nil {
		response.ValidationFailed(c, fieldErrs)
		return
	}

	user, err := h.service.Register(c.Request.Context(), service.RegisterRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	info := models.UserInfo{ID: user.ID, Username: user.Username, Email: user.Email, Role: user.Role}
	response.JSON(c, http.StatusCreated, info, map[string]interface{}{"flash": "registration successful, please log in"})
}

// Logout godoc
// @Summary Logout current session
// @Description Revoke the session token; safe to repeat
// @Tags Authentication
// @Produce json
// @Success 303 {object} response.Envelope
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := claimsFromContext(c)
	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, middleware.LoginPath, "logged out")
}
