// Package content turns untrusted, hand-edited JSON files into render-safe
// page models. Loading never fails: a missing, unreadable or malformed file
// yields the built-in default content, normalized through the same pipeline
// as real data.
package content

import (
	"encoding/json"
	"log"
	"os"
	"strings"
)

// LoadProfile reads and normalizes the profile document. Any failure mode
// returns the default profile.
func LoadProfile(path string) Profile {
	raw, ok := readJSON(path)
	if !ok {
		return NormalizeProfile(nil)
	}
	return NormalizeProfile(raw)
}

// LoadProjects reads and normalizes the projects collection. The result is
// never empty; see NormalizeProjects for the fallback and ordering rules.
func LoadProjects(path string) []Project {
	raw, ok := readJSON(path)
	if !ok {
		return NormalizeProjects(nil)
	}
	return NormalizeProjects(raw)
}

// LoadSiteConfig reads and normalizes the site config document.
func LoadSiteConfig(path string) BackgroundMedia {
	raw, ok := readJSON(path)
	if !ok {
		return NormalizeSiteConfig(nil)
	}
	return NormalizeSiteConfig(raw)
}

// readJSON parses a file defensively. The second return value is false when
// the file is absent, unreadable, empty/whitespace, or not valid JSON; the
// callers fall back to default content in that case.
func readJSON(path string) (any, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("content: read %s failed: %v", path, err)
		}
		return nil, false
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, false
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("content: parse %s failed: %v", path, err)
		return nil, false
	}
	return raw, true
}
