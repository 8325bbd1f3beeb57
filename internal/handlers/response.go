package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"products-api/pkg/lambda"
)

// TimestampFormat is ISO-8601 with millisecond precision
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Payload is the route specific part of a response body
type Payload map[string]interface{}

// Result is what a handler produces before it is wrapped in the envelope
type Result struct {
	StatusCode int
	Payload    Payload
}

// Func handles one request for a matched route
type Func func(ctx context.Context, req *lambda.Request) (*Result, error)

// OK builds a 200 result
func OK(p Payload) *Result {
	return &Result{StatusCode: http.StatusOK, Payload: p}
}

// Created builds a 201 result
func Created(p Payload) *Result {
	return &Result{StatusCode: http.StatusCreated, Payload: p}
}

// MethodNotAllowed builds a 405 result naming the method
func MethodNotAllowed(method string) *Result {
	return &Result{
		StatusCode: http.StatusMethodNotAllowed,
		Payload:    Payload{"message": fmt.Sprintf("%s: %s", MsgUnsupportedMethod, method)},
	}
}

// NotFound builds a 404 result naming the path
func NotFound(path string) *Result {
	return &Result{
		StatusCode: http.StatusNotFound,
		Payload:    Payload{"message": fmt.Sprintf("%s: %s", MsgUnsupportedPath, path)},
	}
}

// Envelope wraps results with the fixed headers and a timestamped JSON body
type Envelope struct {
	AllowOrigin string
}

// Headers returns a fresh copy of the fixed response headers
func (e Envelope) Headers() map[string]string {
	origin := e.AllowOrigin
	if origin == "" {
		origin = "*"
	}
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": origin,
	}
}

// Wrap encodes the result with the given timestamp. The result is not modified.
func (e Envelope) Wrap(res *Result, now time.Time) *lambda.Response {
	stamp := now.UTC().Format(TimestampFormat)

	body := make(Payload, len(res.Payload)+1)
	for k, v := range res.Payload {
		body[k] = v
	}
	body["timestamp"] = stamp

	encoded, err := json.Marshal(body)
	if err != nil {
		// Only echoed client values can get here; answer as if the body was bad
		fallback, _ := json.Marshal(Payload{"message": MsgInvalidJSON, "timestamp": stamp})
		return &lambda.Response{
			StatusCode: http.StatusBadRequest,
			Headers:    e.Headers(),
			Body:       fallback,
		}
	}

	return &lambda.Response{
		StatusCode: res.StatusCode,
		Headers:    e.Headers(),
		Body:       encoded,
	}
}
