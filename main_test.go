package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chartkit/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:           "8981",
		Renderer:       config.RendererECharts,
		ChartWidth:     800,
		ChartHeight:    400,
		StorageMode:    config.StorageLocal,
		LocalChartsDir: filepath.Join(t.TempDir(), "charts-out"),
		Environment:    "test",
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv, err := buildServer(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("buildServer failed: %v", err)
	}
	defer srv.Close()

	req, err := http.NewRequest("GET", "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	srv.SetupRoutes().ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	if !strings.Contains(rr.Body.String(), "healthy") {
		t.Errorf("handler returned unexpected body: got %v", rr.Body.String())
	}
}

func TestChartRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	cfg.Renderer = config.RendererPNG

	srv, err := buildServer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildServer failed: %v", err)
	}
	defer srv.Close()
	mux := srv.SetupRoutes()

	req := httptest.NewRequest(http.MethodPost, "/charts/line/prices", strings.NewReader(`{"labels":["a","b"],"data":[1,2]}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/charts/prices.png", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("fetch returned %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}
}

func TestBuildServer_CreatesChartsDir(t *testing.T) {
	cfg := testConfig(t)
	srv, err := buildServer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildServer failed: %v", err)
	}
	defer srv.Close()

	info, err := os.Stat(filepath.Join(cfg.LocalChartsDir, "charts"))
	if err != nil || !info.IsDir() {
		t.Errorf("charts directory missing after startup: %v", err)
	}
}

func TestBuildServer_UnknownRenderer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Renderer = "svg"

	if _, err := buildServer(context.Background(), cfg); err == nil {
		t.Error("Expected error for unknown renderer")
	}
}

func TestConfigLoad(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Defaults cover every setting, so this only fails on a bad environment
	if _, err := config.Load(ctx); err != nil {
		t.Logf("Config load failed with current environment: %v", err)
	}
}
