package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"products-api/internal/middleware"
	"products-api/internal/router"
	"products-api/pkg/lambda"
)

// Dispatcher turns a normalized request into a normalized response
type Dispatcher interface {
	Dispatch(ctx context.Context, req *lambda.Request) *lambda.Response
}

// RouteNamer is implemented by dispatchers that can name the route serving a path
type RouteNamer interface {
	RouteName(path string) string
}

// RequestFromGin normalizes an HTTP request the way API Gateway's proxy
// integration does: single-valued headers and query parameters, raw body.
func RequestFromGin(c *gin.Context) (*lambda.Request, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	return &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     flatten(c.Request.Header),
		QueryParams: flatten(c.Request.URL.Query()),
		Body:        body,
	}, nil
}

// flatten keeps the last value of each key, matching queryStringParameters.
// An empty input yields nil, as the gateway sends null.
func flatten(values map[string][]string) map[string]string {
	if len(values) == 0 {
		return nil
	}
	flat := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			flat[k] = v[len(v)-1]
		}
	}
	return flat
}

// Handler serves every request through the dispatcher and writes its
// response unchanged
func Handler(d Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := RequestFromGin(c)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
					middleware.NewErrorResponse(c, "Request too large", err.Error()))
				return
			}
			_ = c.Error(err)
			return
		}

		if namer, ok := d.(RouteNamer); ok {
			c.Set(middleware.RouteKey, namer.RouteName(req.Path))
		}

		ctx := router.ContextWithRequestID(c.Request.Context(), c.GetString(middleware.RequestIDKey))
		resp := d.Dispatch(ctx, req)

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
	}
}
