package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Context keys shared with the gateway adapter
const (
	RequestIDKey = "request_id"
	RouteKey     = "route"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one. The same ID
// reaches the dispatcher, so gateway and dispatcher log lines correlate.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// exchangeFields describes a finished request with the same field names the
// dispatcher logs
func exchangeFields(c *gin.Context, latency time.Duration) logrus.Fields {
	route := c.GetString(RouteKey)
	if route == "" {
		route = c.FullPath()
	}

	fields := logrus.Fields{
		"request_id":  c.GetString(RequestIDKey),
		"method":      c.Request.Method,
		"path":        c.Request.URL.Path,
		"route":       route,
		"status_code": c.Writer.Status(),
		"latency_ms":  float64(latency.Nanoseconds()) / 1e6,
	}
	if q := c.Request.URL.RawQuery; q != "" {
		fields["query"] = q
	}
	return fields
}

// StructuredLogger logs every request served by the gateway
func StructuredLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(exchangeFields(c, time.Since(start))).
			WithField("client_ip", c.ClientIP())

		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("Gateway request failed")
		} else {
			entry.Info("Gateway request served")
		}
	}
}

// PerformanceMonitor warns when a request takes longer than slowThreshold
func PerformanceMonitor(logger logrus.FieldLogger, slowThreshold time.Duration) gin.HandlerFunc {
	if slowThreshold <= 0 {
		slowThreshold = time.Second
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if latency := time.Since(start); latency > slowThreshold {
			logger.WithFields(exchangeFields(c, latency)).
				WithField("threshold_ms", slowThreshold.Milliseconds()).
				Warn("Slow request")
		}
	}
}
