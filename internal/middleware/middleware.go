package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CORS adds cross-origin headers. OPTIONS is not answered here; it reaches
// the dispatcher like any other method, as it would behind API Gateway.
func CORS(allowOrigin string) gin.HandlerFunc {
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")

		c.Next()
	}
}

// ErrorHandler middleware for centralized error handling
func ErrorHandler(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			// Log the error
			logger.WithFields(logrus.Fields{
				"request_id": c.GetString(RequestIDKey),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"error":      err.Error(),
			}).Error("Request error")

			if c.Writer.Written() {
				return
			}

			// Return appropriate error response
			switch err.Type {
			case gin.ErrorTypeBind, gin.ErrorTypePublic:
				c.JSON(http.StatusBadRequest, NewErrorResponse(c, "Invalid request", err.Error()))
			default:
				c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "Internal server error", "An internal error occurred"))
			}
		}
	}
}

// Recovery turns panics into 500 responses and logs them
func Recovery(logger logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Error("Recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, NewErrorResponse(c, "Internal server error", "An internal error occurred"))
	})
}

// ErrorResponse represents a standardized error response produced by the
// gateway itself, before a request reaches the dispatcher
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewErrorResponse builds an error response for the current request
func NewErrorResponse(c *gin.Context, errorText, message string) ErrorResponse {
	return ErrorResponse{
		Error:     errorText,
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
