package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/mkryukov/personal-site-content/internal/config"
	"github.com/mkryukov/personal-site-content/internal/store"
	"github.com/mkryukov/personal-site-content/internal/weather"
)

// deadFetcher always reports no result; the stored text must win.
type deadFetcher struct{}

func (deadFetcher) Get(ctx context.Context, url string) ([]byte, bool) { return nil, false }

func newTestApp(t *testing.T) (*fiber.App, *config.AppConfig) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.AppConfig{
		ProfileJSONPath:    filepath.Join(dir, "profile.json"),
		ProjectsJSONPath:   filepath.Join(dir, "projects.json"),
		SiteConfigJSONPath: filepath.Join(dir, "site_config.json"),
		WeatherCachePath:   filepath.Join(dir, "weather_cache.json"),
	}

	app := fiber.New()
	cache := store.NewFileCache(cfg.WeatherCachePath)
	manager := weather.NewManager(cache, deadFetcher{})
	RegisterRoutes(app, cfg, manager)
	return app, cfg
}

// TestProfileEndpointDefaults verifies that a completely absent content
// directory still renders a full profile.
func TestProfileEndpointDefaults(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var profile map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile["name"] != "Ваше имя" {
		t.Fatalf("name = %v", profile["name"])
	}
	// The upstream is dead here, so the stored placeholder is kept.
	if profile["weather_text"] != "Не указано" {
		t.Fatalf("weather_text = %v", profile["weather_text"])
	}
}

func TestProjectsEndpoint(t *testing.T) {
	app, cfg := newTestApp(t)

	body := `[
		{"title": "Site", "status": "stable", "sort": 10},
		{"title": "Bot", "status": "dev", "sort": 20, "featured": true}
	]`
	if err := os.WriteFile(cfg.ProjectsJSONPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write projects: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var payload struct {
		Projects []map[string]any `json:"projects"`
		Featured map[string]any   `json:"featured"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(payload.Projects))
	}
	if payload.Featured["title"] != "Bot" {
		t.Fatalf("featured = %v", payload.Featured["title"])
	}
}

// TestProjectsStatusValidation verifies that the status filter enforces the
// known enum values.
func TestProjectsStatusValidation(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects?status=bogus", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/projects?status=stable", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}
