package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the content core needs from the environment.
type AppConfig struct {
	// Content file paths; the files are produced out-of-band and are
	// read-only from this process's perspective.
	ProfileJSONPath    string
	ProjectsJSONPath   string
	SiteConfigJSONPath string

	// Weather cache file, exclusively owned by the weather manager.
	WeatherCachePath string

	// HTTPTimeout bounds one outbound weather request end to end.
	HTTPTimeout time.Duration

	// WarmInterval controls the optional cache-warming job (0 = disabled).
	WarmInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	dataDir := getenvDefault("DATA_DIR", "./data")
	cfg.ProfileJSONPath = getenvDefault("PROFILE_JSON_PATH", filepath.Join(dataDir, "profile.json"))
	cfg.ProjectsJSONPath = getenvDefault("PROJECTS_JSON_PATH", filepath.Join(dataDir, "projects.json"))
	cfg.SiteConfigJSONPath = getenvDefault("SITE_CONFIG_JSON_PATH", filepath.Join(dataDir, "site_config.json"))
	cfg.WeatherCachePath = getenvDefault("WEATHER_CACHE_PATH", filepath.Join(dataDir, "weather_cache.json"))

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "8s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	warmMinutes := getenvInt("WEATHER_WARM_MINUTES", 0)
	if warmMinutes < 0 {
		warmMinutes = 0
	}
	cfg.WarmInterval = time.Duration(warmMinutes) * time.Minute

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
