package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the request timeout used when none is configured.
const DefaultTimeout = 15 * time.Second

// StatusError is returned when the server answers with a non-200 status.
//
// Message holds the error text reported by the API when the body carries
// one, otherwise the HTTP status text.
type StatusError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Message)
}

// Client wraps HTTP operations with Genius-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Bearer token authorization
//   - Timeout handling
//   - JSON decoding of API responses
//
// Example usage:
//
//	client := NewClient(15*time.Second, token)
//
//	// Fetch JSON from the API
//	var resp searchResponse
//	err := client.GetJSON(ctx, "https://api.genius.com/search?q=Adele", &resp)
//
//	// Fetch HTML content
//	html, err := client.GetString(ctx, "https://genius.com/Adele-hello-lyrics")
type Client struct {
	httpClient  *http.Client
	userAgent   string
	accessToken string
}

// NewClient creates a new HTTP client.
//
// A non-positive timeout selects DefaultTimeout. An empty accessToken
// is sent as an empty bearer token, and the server decides what to do
// with it.
func NewClient(timeout time.Duration, accessToken string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent:   "lyricsipsum",
		accessToken: accessToken,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent and Authorization headers.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (a *StatusError)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body, resp.Status),
		}
	}

	return body, nil
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for fetching text content like HTML.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetJSON performs a GET request and decodes the JSON body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}

// errorMessage extracts an API error message from a response body.
//
// Genius reports errors either as {"meta":{"message":...}} or as
// {"error":...,"error_description":...}.
func errorMessage(body []byte, fallback string) string {
	var apiErr struct {
		Meta struct {
			Message string `json:"message"`
		} `json:"meta"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return fallback
	}

	switch {
	case apiErr.Meta.Message != "":
		return apiErr.Meta.Message
	case apiErr.ErrorDescription != "":
		return strings.TrimSpace(apiErr.Error + ": " + apiErr.ErrorDescription)
	case apiErr.Error != "":
		return apiErr.Error
	}
	return fallback
}
