package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

// DefaultSuccessMessage is used when a handler has nothing more specific to say.
const DefaultSuccessMessage = "ok"

// Envelope represents the success response contract.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorEnvelope represents the failure response contract. Code mirrors the HTTP status.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// JSON sends a success envelope with the given status.
func JSON(c *gin.Context, status int, message string, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	if message == "" {
		message = DefaultSuccessMessage
	}
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// OK responds with HTTP 200.
func OK(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusOK, message, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusCreated, message, data)
}

// Error sends a failure envelope converting the error to its kind's status.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		// picked up by the request logger
		_ = c.Error(err)
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, ErrorEnvelope{Success: false, Message: appErr.Message, Code: appErr.Status})
}

// Abort writes the failure envelope and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
