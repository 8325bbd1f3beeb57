package handlers

import (
	"context"
	"net/http"

	"products-api/internal/models"
	"products-api/pkg/lambda"
)

// CategoryHandler handles /categories
type CategoryHandler struct {
	categories []models.Category
}

// NewCategoryHandler creates a new category handler over a catalog
func NewCategoryHandler(categories []models.Category) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Handle lists the categories
func (h *CategoryHandler) Handle(ctx context.Context, req *lambda.Request) (*Result, error) {
	if req.Method != http.MethodGet {
		return MethodNotAllowed(req.Method), nil
	}
	return OK(Payload{"categories": h.categories}), nil
}
