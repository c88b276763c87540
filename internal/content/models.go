package content

// Link is one external link on the profile page.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Profile is the fully-normalized profile page model. Every field is always
// present and type-correct; the renderer applies no defaulting of its own.
type Profile struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Bio         string   `json:"bio"`
	Username    string   `json:"username"`
	TelegramURL string   `json:"telegram_url"`
	Links       []Link   `json:"links"`
	Stack       []string `json:"stack"`
	Quote       string   `json:"quote"`

	NowListeningText        string `json:"now_listening_text"`
	NowListeningAutoEnabled bool   `json:"now_listening_auto_enabled"`
	NowListeningUpdatedAt   string `json:"now_listening_updated_at"`

	WeatherText           string  `json:"weather_text"`
	WeatherAutoEnabled    bool    `json:"weather_auto_enabled"`
	WeatherLocationName   string  `json:"weather_location_name"`
	WeatherLatitude       float64 `json:"weather_latitude"`
	WeatherLongitude      float64 `json:"weather_longitude"`
	WeatherTimezone       string  `json:"weather_timezone"`
	WeatherRefreshMinutes int     `json:"weather_refresh_minutes"`
	WeatherUpdatedAt      string  `json:"weather_updated_at"`

	AvatarURL string `json:"avatar_url"`
}

// Status is a project lifecycle stage. Unrecognized input collapses to
// StatusDev because the content files are hand-edited and typos are expected.
type Status string

const (
	StatusWorking  Status = "working"
	StatusTesting  Status = "testing"
	StatusDev      Status = "dev"
	StatusUnstable Status = "unstable"
	StatusArchived Status = "archived"
	StatusStable   Status = "stable"
)

var statusValues = map[Status]struct{}{
	StatusWorking:  {},
	StatusTesting:  {},
	StatusDev:      {},
	StatusUnstable: {},
	StatusArchived: {},
	StatusStable:   {},
}

// Years is an inclusive year range; To is never below From.
type Years struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// MediaType discriminates cover and background media.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Cover is a project's cover media.
type Cover struct {
	Type MediaType `json:"type"`
	Src  string    `json:"src"`
}

// Project is one normalized entry of the projects page.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Status      Status   `json:"status"`
	Years       Years    `json:"years"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Cover       Cover    `json:"cover"`
	Sort        int      `json:"sort"`
	UpdatedAt   string   `json:"updated_at"`
}

// BackgroundMedia is the projects page background from the site config.
type BackgroundMedia struct {
	Type MediaType `json:"type"`
	Src  string    `json:"src"`
}
