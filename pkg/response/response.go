package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/classdeck/classdeck-api/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data  interface{}            `json:"data,omitempty"`
	Error *appErrors.Error       `json:"error,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response with optional metadata.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	envelope := Envelope{Data: data}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// ValidationFailed re-presents the originating form: HTTP 400 with
// per-field error annotations. Nothing has been persisted.
func ValidationFailed(c *gin.Context, fields interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErrors.ErrValidation.Status, Envelope{
		Error: appErrors.ErrValidation,
		Meta:  map[string]interface{}{"fields": fields},
	})
}

// Redirect issues a 303 See Other carrying a flash message. Failed
// authorization is surfaced this way instead of a hard error page.
func Redirect(c *gin.Context, location, flash string) {
	c.Header("Location", location)
	c.JSON(http.StatusSeeOther, Envelope{Meta: map[string]interface{}{"flash": flash, "location": location}})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
