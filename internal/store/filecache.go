// Package store persists the weather cache entry on disk. The file is a
// best-effort optimization shared by concurrent renders: an unparsable or
// missing file is a cache miss, never a fatal error, and a lost write race
// only costs one extra upstream call.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrNotFound is returned when no usable cache entry is available.
	ErrNotFound = errors.New("no cached weather entry")
)

// WeatherEntry is the on-disk cache record: the rendered text plus the
// exact query parameters that produced it.
type WeatherEntry struct {
	TS           int64   `json:"ts"`
	Text         string  `json:"text"`
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Timezone     string  `json:"timezone"`
}

// FileCache reads and overwrites one JSON cache file. The mutex only
// serializes writers within this process; the file itself is unlocked and
// independently tolerant of corruption.
type FileCache struct {
	mu   sync.Mutex
	path string
}

// NewFileCache creates a FileCache over the given path.
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Load returns the stored entry, or ErrNotFound when the file is absent,
// unparsable, or lacks a text/timestamp.
func (c *FileCache) Load() (WeatherEntry, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return WeatherEntry{}, ErrNotFound
	}

	var entry WeatherEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return WeatherEntry{}, ErrNotFound
	}
	if entry.Text == "" || entry.TS <= 0 {
		return WeatherEntry{}, ErrNotFound
	}
	return entry, nil
}

// Save overwrites the cache file with a pretty-printed entry, non-ASCII
// preserved for human inspection.
func (c *FileCache) Save(entry WeatherEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entry); err != nil {
		return err
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(c.path, buf.Bytes(), 0o644)
}
