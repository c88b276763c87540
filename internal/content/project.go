package content

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/mkryukov/personal-site-content/internal/coerce"
	"github.com/mkryukov/personal-site-content/internal/common"
)

const (
	yearMin = 1970
	yearMax = 2100

	sortMin     = -999999
	sortMax     = 999999
	sortDefault = 100
)

var slugStrip = regexp.MustCompile(`[^a-z0-9_-]+`)
var slugSqueeze = regexp.MustCompile(`-{2,}`)

// Slugify reduces a title to a URL-safe project id. May return empty when
// nothing survives; callers supply a positional fallback id.
func Slugify(value string) string {
	text := strings.ToLower(value)
	text = slugStrip.ReplaceAllString(text, "-")
	text = slugSqueeze.ReplaceAllString(text, "-")
	return strings.Trim(text, "-_")
}

// NormalizeProject maps one raw JSON-decoded value to a fully-typed Project.
// fallbackID is a 1-based positional id used when the entry carries none.
func NormalizeProject(raw any, fallbackID string) Project {
	obj, ok := raw.(map[string]any)
	if !ok {
		obj = map[string]any{}
	}

	title, _ := coerce.Text(obj["title"], "Untitled")
	rawID, _ := coerce.Text(obj["id"], fallbackID)
	id := Slugify(rawID)
	if id == "" {
		id = fallbackID
	}

	yearsRaw, _ := obj["years"].(map[string]any)
	currentYear := time.Now().UTC().Year()
	from, _ := coerce.Int(yearsRaw["from"], currentYear, yearMin, yearMax)
	to, _ := coerce.Int(yearsRaw["to"], from, yearMin, yearMax)
	if to < from {
		to = from
	}

	subtitle, _ := coerce.Text(obj["subtitle"], "")
	description, _ := coerce.Text(obj["description"], "")
	featured, _ := coerce.Bool(obj["featured"], false)
	sortKey, _ := coerce.Int(obj["sort"], sortDefault, sortMin, sortMax)
	updatedAt, _ := coerce.Text(obj["updated_at"], time.Now().UTC().Format(time.RFC3339))

	return Project{
		ID:          id,
		Title:       title,
		Subtitle:    subtitle,
		Description: description,
		URL:         normalizeHTTPURL(obj["url"], ""),
		Status:      normalizeStatus(obj["status"]),
		Years:       Years{From: from, To: to},
		Tags:        normalizeTags(obj["tags"]),
		Featured:    featured,
		Cover:       normalizeCover(obj["cover"]),
		Sort:        sortKey,
		UpdatedAt:   updatedAt,
	}
}

// NormalizeProjects normalizes a raw decoded collection in original order.
// Non-object elements are skipped; an input that is not a list, or that
// normalizes to nothing, yields the default demo project instead of an empty
// collection. The result is stable-sorted by (sort, lower(title)).
func NormalizeProjects(raw any) []Project {
	list, ok := raw.([]any)
	if !ok {
		list = defaultProjectsRaw()
	}

	projects := make([]Project, 0, len(list))
	usedIDs := make(map[string]struct{})
	index := 0
	for _, item := range list {
		if _, isObj := item.(map[string]any); !isObj {
			continue
		}
		index++
		project := NormalizeProject(item, fmt.Sprintf("project-%d", index))
		base := project.ID
		for suffix := 2; ; suffix++ {
			if _, taken := usedIDs[project.ID]; !taken {
				break
			}
			project.ID = fmt.Sprintf("%s-%d", base, suffix)
		}
		usedIDs[project.ID] = struct{}{}
		projects = append(projects, project)
	}

	if len(projects) == 0 {
		projects = []Project{NormalizeProject(defaultProjectsRaw()[0], "project-1")}
	}

	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Sort != projects[j].Sort {
			return projects[i].Sort < projects[j].Sort
		}
		return strings.ToLower(projects[i].Title) < strings.ToLower(projects[j].Title)
	})
	return projects
}

// FeaturedIndex picks the project elevated to the dedicated layout slot:
// the first entry flagged featured, or the first entry of the sorted
// collection when none is flagged.
func FeaturedIndex(projects []Project) int {
	for i, p := range projects {
		if p.Featured {
			return i
		}
	}
	return 0
}

// NormalizeSiteConfig extracts the projects page background from a raw
// decoded site config of any shape.
func NormalizeSiteConfig(raw any) BackgroundMedia {
	obj, ok := raw.(map[string]any)
	if !ok {
		obj = defaultSiteConfigRaw()
	}
	bg, _ := obj["projects_background"].(map[string]any)
	return BackgroundMedia{
		Type: normalizeMediaType(bg["type"]),
		Src:  NormalizeMediaSrc(bg["src"]),
	}
}

func normalizeStatus(raw any) Status {
	text, _ := coerce.Text(raw, string(StatusDev))
	status := Status(strings.ToLower(text))
	if _, ok := statusValues[status]; ok {
		return status
	}
	return StatusDev
}

// normalizeTags deduplicates case-insensitively, keeping the first-seen
// casing and order. Accepts a delimited string as well as a list.
func normalizeTags(raw any) []string {
	items, ok := stringItems(raw)
	if !ok {
		items = nil
	}
	tags := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, item)
	}
	return tags
}

func normalizeCover(raw any) Cover {
	obj, _ := raw.(map[string]any)
	return Cover{
		Type: normalizeMediaType(obj["type"]),
		Src:  NormalizeMediaSrc(obj["src"]),
	}
}

func normalizeMediaType(raw any) MediaType {
	text, _ := coerce.Text(raw, string(MediaImage))
	if t := MediaType(strings.ToLower(text)); t == MediaImage || t == MediaVideo {
		return t
	}
	return MediaImage
}

// NormalizeMediaSrc keeps absolute URLs and root-relative paths unchanged;
// a bare relative path is forced root-relative for compatibility with older
// content files.
func NormalizeMediaSrc(raw any) string {
	text, _ := coerce.Text(raw, "")
	if text == "" {
		return ""
	}
	if common.HasAnyPrefix(text, "http://", "https://") {
		return text
	}
	if strings.HasPrefix(text, "/") {
		return text
	}
	return "/" + strings.TrimLeft(text, "/")
}
