package content

import (
	"reflect"
	"testing"
	"time"
)

func TestNormalizeProjectTags(t *testing.T) {
	p := NormalizeProject(map[string]any{
		"title": "Tagged",
		"tags":  "Python, python ,  FastAPI;fastapi",
	}, "project-1")

	want := []string{"Python", "FastAPI"}
	if !reflect.DeepEqual(p.Tags, want) {
		t.Fatalf("tags = %v, want %v", p.Tags, want)
	}
}

func TestNormalizeProjectYears(t *testing.T) {
	p := NormalizeProject(map[string]any{
		"years": map[string]any{"from": 2022.0, "to": 2019.0},
	}, "project-1")
	if p.Years.To != p.Years.From {
		t.Fatalf("to < from must force to == from, got %+v", p.Years)
	}

	p = NormalizeProject(map[string]any{
		"years": map[string]any{"from": 1200.0, "to": 9999.0},
	}, "project-1")
	if p.Years.From != 1970 || p.Years.To != 2100 {
		t.Fatalf("years must clamp to [1970,2100], got %+v", p.Years)
	}

	p = NormalizeProject(map[string]any{}, "project-1")
	if p.Years.From != time.Now().UTC().Year() {
		t.Fatalf("missing years.from must default to current year, got %d", p.Years.From)
	}
}

func TestNormalizeProjectURLAndStatus(t *testing.T) {
	p := NormalizeProject(map[string]any{
		"url":    "ftp://example.com/x",
		"status": "Shipped",
	}, "project-1")
	if p.URL != "" {
		t.Fatalf("non-http url must be blanked, got %q", p.URL)
	}
	if p.Status != StatusDev {
		t.Fatalf("unrecognized status must fall back to dev, got %q", p.Status)
	}

	p = NormalizeProject(map[string]any{
		"url":    "HTTPS://example.com/x",
		"status": "ARCHIVED",
	}, "project-1")
	if p.URL == "" {
		t.Fatalf("https url must be kept")
	}
	if p.Status != StatusArchived {
		t.Fatalf("status matching is case-insensitive, got %q", p.Status)
	}
}

func TestNormalizeMediaSrc(t *testing.T) {
	cases := map[string]string{
		"assets/img.png":       "/assets/img.png",
		"https://x.tld/a.png":  "https://x.tld/a.png",
		"/already/root.png":    "/already/root.png",
		"":                     "",
		"  assets/cover.mp4  ": "/assets/cover.mp4",
	}
	for input, want := range cases {
		if got := NormalizeMediaSrc(input); got != want {
			t.Fatalf("NormalizeMediaSrc(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeProjectsSortAndFeatured(t *testing.T) {
	raw := []any{
		map[string]any{"title": "Bravo", "sort": 200.0},
		map[string]any{"title": "alpha", "sort": 100.0},
		map[string]any{"title": "Alpha", "sort": 100.0, "id": "other-alpha"},
		map[string]any{"title": "Charlie", "sort": 100.0},
		map[string]any{"title": "Delta", "sort": 50.0},
	}
	projects := NormalizeProjects(raw)
	if len(projects) != 5 {
		t.Fatalf("expected 5 projects, got %d", len(projects))
	}
	if projects[0].Title != "Delta" {
		t.Fatalf("lowest sort must come first, got %q", projects[0].Title)
	}
	if projects[len(projects)-1].Title != "Bravo" {
		t.Fatalf("highest sort must come last, got %q", projects[len(projects)-1].Title)
	}
	// Equal (sort, lower(title)) keys keep input order: "alpha" before "Alpha".
	if projects[1].Title != "alpha" || projects[2].Title != "Alpha" {
		t.Fatalf("stable sort violated: %q, %q", projects[1].Title, projects[2].Title)
	}

	// None flagged featured: the first entry after sorting is selected.
	if idx := FeaturedIndex(projects); idx != 0 {
		t.Fatalf("FeaturedIndex = %d, want 0", idx)
	}

	projects[3].Featured = true
	if idx := FeaturedIndex(projects); idx != 3 {
		t.Fatalf("FeaturedIndex = %d, want 3", idx)
	}
}

func TestNormalizeProjectsSkipsAndFallsBack(t *testing.T) {
	projects := NormalizeProjects([]any{"garbage", 42.0, nil})
	if len(projects) != 1 {
		t.Fatalf("all-garbage input must yield the fallback project, got %d entries", len(projects))
	}
	if projects[0].ID != "demo-project" {
		t.Fatalf("fallback project id = %q, want demo-project", projects[0].ID)
	}
	if !projects[0].Featured {
		t.Fatalf("fallback project must be featured")
	}
}

func TestNormalizeProjectsDuplicateIDs(t *testing.T) {
	raw := []any{
		map[string]any{"id": "site", "title": "One"},
		map[string]any{"id": "site", "title": "Two"},
		map[string]any{"id": "site", "title": "Three"},
	}
	projects := NormalizeProjects(raw)
	seen := map[string]bool{}
	for _, p := range projects {
		if seen[p.ID] {
			t.Fatalf("duplicate id %q after normalization", p.ID)
		}
		seen[p.ID] = true
	}
	if !seen["site"] || !seen["site-2"] || !seen["site-3"] {
		t.Fatalf("expected suffixed ids, got %v", seen)
	}
}

// TestNormalizeProjectIdempotent re-normalizes an already-normalized entity
// and expects no change.
func TestNormalizeProjectIdempotent(t *testing.T) {
	first := NormalizeProject(map[string]any{
		"id":       "My Project!",
		"title":    "My Project",
		"url":      "https://example.com",
		"status":   "stable",
		"years":    map[string]any{"from": 2020.0, "to": 2024.0},
		"tags":     []any{"Go", "go", "SQLite"},
		"featured": true,
		"cover":    map[string]any{"type": "video", "src": "media/intro.mp4"},
		"sort":     10.0,
	}, "project-1")

	second := NormalizeProject(map[string]any{
		"id":          first.ID,
		"title":       first.Title,
		"subtitle":    first.Subtitle,
		"description": first.Description,
		"url":         first.URL,
		"status":      string(first.Status),
		"years":       map[string]any{"from": float64(first.Years.From), "to": float64(first.Years.To)},
		"tags":        []any{first.Tags[0], first.Tags[1]},
		"featured":    first.Featured,
		"cover":       map[string]any{"type": string(first.Cover.Type), "src": first.Cover.Src},
		"sort":        float64(first.Sort),
		"updated_at":  first.UpdatedAt,
	}, "project-1")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
