package handlers

import (
	"context"
	"net/http"

	"products-api/internal/models"
	"products-api/pkg/lambda"
)

// EchoHandler handles the generic /api endpoint
type EchoHandler struct {
	// legacyStatus answers 200 for unsupported methods and malformed bodies,
	// as the first version of the function did
	legacyStatus bool
}

// NewEchoHandler creates a new echo handler
func NewEchoHandler(legacyStatus bool) *EchoHandler {
	return &EchoHandler{legacyStatus: legacyStatus}
}

// Handle greets on GET and echoes the decoded body on POST
func (h *EchoHandler) Handle(ctx context.Context, req *lambda.Request) (*Result, error) {
	switch req.Method {
	case http.MethodGet:
		return OK(Payload{"message": "Hello from Lambda!"}), nil

	case http.MethodPost:
		data, err := models.DecodeValue(req.Body)
		if err != nil {
			if h.legacyStatus {
				return OK(Payload{"message": MsgInvalidJSON}), nil
			}
			return nil, &MalformedBodyError{Err: err}
		}
		return OK(Payload{
			"message":       "Data received successfully",
			"received_data": data,
		}), nil

	default:
		res := MethodNotAllowed(req.Method)
		if h.legacyStatus {
			res.StatusCode = http.StatusOK
		}
		return res, nil
	}
}
