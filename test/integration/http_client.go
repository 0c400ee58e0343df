//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// HTTPClient drives the router in-process, carrying a bearer token between
// requests the way a logged-in storefront session would.
type HTTPClient struct {
	router *gin.Engine
	token  string
}

func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{router: router, token: token}
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (c *HTTPClient) Do(method, path string, body interface{}) (*Response, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	return &Response{StatusCode: rec.Code, Body: rec.Body.Bytes()}, nil
}

func (c *HTTPClient) Get(path string) (*Response, error) {
	return c.Do(http.MethodGet, path, nil)
}

func (c *HTTPClient) Post(path string, body interface{}) (*Response, error) {
	return c.Do(http.MethodPost, path, body)
}

func (c *HTTPClient) Put(path string, body interface{}) (*Response, error) {
	return c.Do(http.MethodPut, path, body)
}

func (c *HTTPClient) Delete(path string) (*Response, error) {
	return c.Do(http.MethodDelete, path, nil)
}

// ParseJSON decodes the response body into out.
func (r *Response) ParseJSON(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}
