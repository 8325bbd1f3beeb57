package handlers

import (
	"context"
	"fmt"
	"net/http"

	"products-api/internal/models"
	"products-api/pkg/lambda"
)

// ProductIDParam is the path parameter carrying the product ID
const ProductIDParam = "productId"

// ProductHandler handles product-related requests
type ProductHandler struct {
	products []models.Product
}

// NewProductHandler creates a new product handler over a catalog
func NewProductHandler(products []models.Product) *ProductHandler {
	return &ProductHandler{
		products: products,
	}
}

// HandleCollection handles /products
func (h *ProductHandler) HandleCollection(ctx context.Context, req *lambda.Request) (*Result, error) {
	switch req.Method {
	case http.MethodGet:
		return h.HandleList(ctx, req)
	case http.MethodPost:
		return h.HandleCreate(ctx, req)
	default:
		return MethodNotAllowed(req.Method), nil
	}
}

// HandleItem handles /products/{productId}
func (h *ProductHandler) HandleItem(ctx context.Context, req *lambda.Request) (*Result, error) {
	switch req.Method {
	case http.MethodGet:
		return h.HandleGet(ctx, req)
	case http.MethodPut:
		return h.HandleUpdate(ctx, req)
	case http.MethodDelete:
		return h.HandleDelete(ctx, req)
	default:
		return MethodNotAllowed(req.Method), nil
	}
}

// HandleList returns the catalog, optionally filtered by the category query parameter
func (h *ProductHandler) HandleList(ctx context.Context, req *lambda.Request) (*Result, error) {
	products := models.FilterByCategory(h.products, req.Query("category"))

	return OK(Payload{
		"products": products,
		"count":    len(products),
	}), nil
}

// HandleCreate validates the submitted product and echoes it with a placeholder ID
func (h *ProductHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*Result, error) {
	submitted, err := models.DecodeAttributes(req.Body)
	if err != nil {
		return nil, &MalformedBodyError{Err: err}
	}

	draft := models.DraftFromAttributes(submitted)
	if err := draft.Validate(); err != nil {
		if field, ok := models.MissingField(err); ok {
			return nil, &ValidationError{Field: field}
		}
		return nil, fmt.Errorf("failed to validate product: %w", err)
	}

	return Created(Payload{
		"message": "Product created successfully",
		"product": models.NewProductFromDraft(submitted),
	}), nil
}

// HandleGet synthesizes the product for the requested ID
func (h *ProductHandler) HandleGet(ctx context.Context, req *lambda.Request) (*Result, error) {
	return OK(Payload{
		"product": models.PlaceholderProduct(req.Param(ProductIDParam)),
	}), nil
}

// HandleUpdate overlays the submitted fields on the placeholder product
func (h *ProductHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*Result, error) {
	id := req.Param(ProductIDParam)

	update, err := models.DecodeAttributes(req.Body)
	if err != nil {
		return nil, &MalformedBodyError{Err: err}
	}

	return OK(Payload{
		"message": fmt.Sprintf("Product %s updated successfully", id),
		"product": models.PlaceholderProduct(id).ApplyUpdate(update),
	}), nil
}

// HandleDelete acknowledges the deletion without touching any state
func (h *ProductHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*Result, error) {
	return OK(Payload{
		"message": fmt.Sprintf("Product %s deleted successfully", req.Param(ProductIDParam)),
	}), nil
}
