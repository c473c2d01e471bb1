package server

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/fabriciorsa/Guia-Ligiane/internal/config"
)

func TestHealthEndpoint(t *testing.T) {
	s := NewServer(config.Config{}, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestUnknownAPIRouteIs404(t *testing.T) {
	s := NewServer(config.Config{}, nil)

	req := httptest.NewRequest("GET", "/api/unknown", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCorsHeaderWhenConfigured(t *testing.T) {
	s := NewServer(config.Config{CorsOrigins: "http://localhost:5173"}, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}
