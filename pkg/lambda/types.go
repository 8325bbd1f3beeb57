package lambda

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
}

// Query returns the named query parameter or an empty string
func (r *Request) Query(key string) string {
	if r.QueryParams == nil {
		return ""
	}
	return r.QueryParams[key]
}

// Param returns the named path parameter or an empty string
func (r *Request) Param(key string) string {
	if r.PathParams == nil {
		return ""
	}
	return r.PathParams[key]
}

// WithPathParams returns a shallow copy of the request whose path parameters
// are the gateway supplied ones overlaid with params. The receiver is not modified.
func (r *Request) WithPathParams(params map[string]string) *Request {
	merged := make(map[string]string, len(r.PathParams)+len(params))
	for k, v := range r.PathParams {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}

	clone := *r
	clone.PathParams = merged
	return &clone
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}
