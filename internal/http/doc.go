// Package http provides an HTTP client configured for Genius requests.
//
// The Client in this package handles:
//   - User-Agent and bearer Authorization headers
//   - JSON decoding of API responses
//   - Timeout handling
//   - Translation of non-200 responses into *StatusError
//
// # Basic Usage
//
//	client := http.NewClient(15*time.Second, token)
//
//	// Decode an API response
//	var out struct{ Response json.RawMessage }
//	err := client.GetJSON(ctx, "https://api.genius.com/search?q=Adele", &out)
//
//	// Fetch an HTML page
//	html, err := client.GetString(ctx, songURL)
//
// # Errors
//
// A failed status is reported as *StatusError:
//
//	var statusErr *http.StatusError
//	if errors.As(err, &statusErr) && statusErr.StatusCode == 401 {
//	    // bad or missing access token
//	}
package http
