package router

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"products-api/internal/handlers"
	"products-api/pkg/lambda"
)

type requestIDKey struct{}

// ContextWithRequestID attaches the caller's request ID for log correlation
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID attached to ctx, if any
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Options configures a Dispatcher
type Options struct {
	AllowOrigin      string
	LegacyEchoStatus bool
	Clock            func() time.Time
	Logger           logrus.FieldLogger
}

// Dispatcher maps a normalized request to a normalized response.
// It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	routes   Table
	envelope handlers.Envelope
	clock    func() time.Time
	logger   logrus.FieldLogger
}

// New creates a dispatcher over the default routing table
func New(opts Options) *Dispatcher {
	return NewWithRoutes(DefaultRoutes(opts.LegacyEchoStatus), opts)
}

// NewWithRoutes creates a dispatcher over a custom routing table
func NewWithRoutes(routes Table, opts Options) *Dispatcher {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	table := make(Table, len(routes))
	copy(table, routes)

	return &Dispatcher{
		routes:   table,
		envelope: handlers.Envelope{AllowOrigin: opts.AllowOrigin},
		clock:    clock,
		logger:   logger,
	}
}

// Routes returns the routing table in evaluation order
func (d *Dispatcher) Routes() Table {
	table := make(Table, len(d.routes))
	copy(table, d.routes)
	return table
}

// RouteName returns the name of the route that serves path, or "" if none does
func (d *Dispatcher) RouteName(path string) string {
	if route, _, ok := d.routes.Match(path); ok {
		return route.Name
	}
	return ""
}

// Dispatch routes the request and wraps the outcome in the response envelope.
// It never fails: decode and validation errors become 400 responses.
func (d *Dispatcher) Dispatch(ctx context.Context, req *lambda.Request) *lambda.Response {
	start := time.Now()
	now := d.clock()

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	fields := logrus.Fields{
		"request_id": requestID,
		"method":     req.Method,
		"path":       req.Path,
	}

	var res *handlers.Result
	route, params, ok := d.routes.Match(req.Path)
	if !ok {
		res = handlers.NotFound(req.Path)
		fields["route"] = ""
	} else {
		fields["route"] = route.Name

		var err error
		res, err = route.Handler(ctx, req.WithPathParams(params))
		if err != nil {
			d.logger.WithFields(fields).WithFields(logrus.Fields{
				"error":      err.Error(),
				"error_type": handlers.ErrorKind(err),
			}).Warn("Request rejected")
			res = handlers.ErrorResult(err)
		}
	}

	resp := d.envelope.Wrap(res, now)

	fields["status_code"] = resp.StatusCode
	fields["latency_ms"] = float64(time.Since(start).Nanoseconds()) / 1000000
	d.logger.WithFields(fields).Info("Request dispatched")

	return resp
}
