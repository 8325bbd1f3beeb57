package lambda

import (
	"encoding/base64"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestFromProxyRequest(t *testing.T) {
	req, err := FromProxyRequest(events.APIGatewayProxyRequest{
		HTTPMethod:            "GET",
		Path:                  "/products",
		QueryStringParameters: map[string]string{"category": "books"},
		Body:                  "",
	})
	if err != nil {
		t.Fatalf("FromProxyRequest failed: %v", err)
	}

	if req.Method != "GET" || req.Path != "/products" {
		t.Errorf("Unexpected request line %s %s", req.Method, req.Path)
	}
	if req.Query("category") != "books" {
		t.Errorf("Expected category books, got %q", req.Query("category"))
	}
	if req.Param("productId") != "" {
		t.Errorf("Expected no path parameter, got %q", req.Param("productId"))
	}
}

func TestFromProxyRequestBase64(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte(`{"a":1}`))

	req, err := FromProxyRequest(events.APIGatewayProxyRequest{Body: encoded, IsBase64Encoded: true})
	if err != nil {
		t.Fatalf("FromProxyRequest failed: %v", err)
	}
	if string(req.Body) != `{"a":1}` {
		t.Errorf("Expected decoded body, got %q", req.Body)
	}

	if _, err := FromProxyRequest(events.APIGatewayProxyRequest{Body: "***", IsBase64Encoded: true}); err == nil {
		t.Error("Expected error for invalid base64")
	}
}

func TestToProxyResponse(t *testing.T) {
	resp := ToProxyResponse(&Response{
		StatusCode: 201,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"ok":true}`),
	})

	if resp.StatusCode != 201 || resp.Body != `{"ok":true}` || resp.Headers["Content-Type"] != "application/json" {
		t.Errorf("Unexpected proxy response %+v", resp)
	}
}

func TestWithPathParams(t *testing.T) {
	original := &Request{PathParams: map[string]string{"productId": "old", "other": "x"}}

	merged := original.WithPathParams(map[string]string{"productId": "new"})

	if merged.Param("productId") != "new" || merged.Param("other") != "x" {
		t.Errorf("Unexpected merged params %v", merged.PathParams)
	}
	if original.Param("productId") != "old" {
		t.Error("Original request was modified")
	}
}
