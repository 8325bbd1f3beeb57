package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"products-api/internal/config"
	"products-api/pkg/server"
)

func newTestContainer(t *testing.T) *server.Container {
	t.Helper()
	container, err := server.NewContainer(&config.Config{
		Environment: "test",
		Port:        "8081",
		Log:         config.LogConfig{Level: "error", Format: "json"},
		Dispatch:    config.DispatchConfig{AllowOrigin: "*"},
	})
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	return container
}

func decodeBody(t *testing.T, resp events.APIGatewayProxyResponse) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("Response body is not JSON: %v", err)
	}
	return body
}

func TestHandleGetRequest(t *testing.T) {
	container := newTestContainer(t)

	resp := handle(context.Background(), container, events.APIGatewayProxyRequest{
		HTTPMethod: "GET",
		Path:       "/api",
		Headers:    map[string]string{},
	})

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["message"] != "Hello from Lambda!" {
		t.Errorf("Unexpected message %v", body["message"])
	}
	if _, ok := body["timestamp"]; !ok {
		t.Error("Expected timestamp in body")
	}
	if resp.Headers["Content-Type"] != "application/json" || resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Errorf("Unexpected headers %v", resp.Headers)
	}
}

func TestHandleProductDetailWithPathParameters(t *testing.T) {
	container := newTestContainer(t)

	resp := handle(context.Background(), container, events.APIGatewayProxyRequest{
		HTTPMethod:     "GET",
		Path:           "/products/123",
		Resource:       "/products/{productId}",
		PathParameters: map[string]string{"productId": "123"},
	})

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	product := decodeBody(t, resp)["product"].(map[string]interface{})
	if product["id"] != "123" {
		t.Errorf("Expected product id 123, got %v", product["id"])
	}
}

func TestHandleBase64Body(t *testing.T) {
	container := newTestContainer(t)
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})

	payload := base64.StdEncoding.EncodeToString([]byte(`{"name":"New Product","price":1500,"category":"books"}`))
	resp := handle(ctx, container, events.APIGatewayProxyRequest{
		HTTPMethod:      "POST",
		Path:            "/products",
		Body:            payload,
		IsBase64Encoded: true,
	})

	if resp.StatusCode != 201 {
		t.Fatalf("Expected status 201, got %d (%s)", resp.StatusCode, resp.Body)
	}
	product := decodeBody(t, resp)["product"].(map[string]interface{})
	if product["name"] != "New Product" || product["price"] != float64(1500) || product["category"] != "books" {
		t.Errorf("Unexpected product %v", product)
	}
}

func TestHandleUndecodableBase64Body(t *testing.T) {
	container := newTestContainer(t)

	resp := handle(context.Background(), container, events.APIGatewayProxyRequest{
		HTTPMethod:      "POST",
		Path:            "/products",
		Body:            "%%%not-base64",
		IsBase64Encoded: true,
	})

	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
