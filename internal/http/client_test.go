package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_GetJSON(t *testing.T) {
	var gotAuth, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"response":{"name":"Adele"}}`))
	}))
	defer srv.Close()

	client := NewClient(time.Second, "secret")

	var out struct {
		Response struct {
			Name string `json:"name"`
		} `json:"response"`
	}
	if err := client.GetJSON(context.Background(), srv.URL, &out); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}

	if out.Response.Name != "Adele" {
		t.Errorf("Name = %q, want %q", out.Response.Name, "Adele")
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret")
	}
	if gotAgent != "lyricsipsum" {
		t.Errorf("User-Agent = %q, want %q", gotAgent, "lyricsipsum")
	}
}

func TestClient_StatusError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "meta message",
			status:      http.StatusUnauthorized,
			body:        `{"meta":{"status":401,"message":"This call requires an access_token."}}`,
			wantMessage: "This call requires an access_token.",
		},
		{
			name:        "oauth error",
			status:      http.StatusUnauthorized,
			body:        `{"error":"invalid_token","error_description":"The access token provided is expired"}`,
			wantMessage: "invalid_token: The access token provided is expired",
		},
		{
			name:        "plain body",
			status:      http.StatusTooManyRequests,
			body:        `slow down`,
			wantMessage: "429 Too Many Requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(time.Second, "").GetString(context.Background(), srv.URL)

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error = %v, want *StatusError", err)
			}
			if statusErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.status)
			}
			if statusErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", statusErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	var out map[string]any
	if err := NewClient(0, "").GetJSON(context.Background(), srv.URL, &out); err == nil {
		t.Fatal("expected decode error")
	}
}
