package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client so transport-level concerns can be extended
// in one place without touching call sites.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:5001/api/todos")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with a default-configured underlying
// resty.Client. Each call returns an independent instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
