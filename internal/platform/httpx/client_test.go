package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "zenpod/internal/platform/errors"
	"zenpod/internal/platform/httpx"
)

func TestGetJSONDecodesBody(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scriptures/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing accept header")
		}
		_, _ = w.Write([]byte(`{"value":42}`))
	}))
	defer server.Close()

	client := httpx.New(server.URL)
	var out struct {
		Value int `json:"value"`
	}
	if err := client.GetJSON(context.Background(), "/scriptures/", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Value != 42 {
		t.Fatalf("expected 42, got %d", out.Value)
	}
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := httpx.New(server.URL)
	err := client.GetJSON(context.Background(), "/users/token/dead", nil)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTransportFailureMapsToNetworkError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := httpx.New(server.URL)
	err := client.GetJSON(context.Background(), "/scriptures/", nil)
	if !errors.Is(err, apperrors.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestServerErrorSurfacesStatusCode(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := httpx.New(server.URL)
	err := client.PostJSON(context.Background(), "/sessions/", map[string]int{"duration_hours": 1}, nil)
	if err == nil {
		t.Fatalf("5xx must fail")
	}
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrNetwork) {
		t.Fatalf("5xx is neither not-found nor network, got %v", err)
	}
}
