package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mkryukov/personal-site-content/internal/config"
	"github.com/mkryukov/personal-site-content/internal/content"
	"github.com/mkryukov/personal-site-content/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. The handlers
// never fail on content problems: the loaders always produce a complete,
// render-safe model, so the only error responses here are for bad queries.
func RegisterRoutes(app *fiber.App, cfg *config.AppConfig, manager *weather.Manager) {
	v1 := app.Group("/api/v1")

	v1.Get("/profile", func(c *fiber.Ctx) error {
		profile := content.LoadProfile(cfg.ProfileJSONPath)
		profile.WeatherText = manager.Resolve(c.Context(), profile)
		return c.JSON(profile)
	})

	v1.Get("/projects", func(c *fiber.Ctx) error {
		var q projectsQuery
		q.Status = c.Query("status")
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		projects := content.LoadProjects(cfg.ProjectsJSONPath)
		background := content.LoadSiteConfig(cfg.SiteConfigJSONPath)
		featured := projects[content.FeaturedIndex(projects)]

		if q.Status != "" {
			filtered := make([]content.Project, 0, len(projects))
			for _, p := range projects {
				if p.Status == content.Status(q.Status) {
					filtered = append(filtered, p)
				}
			}
			projects = filtered
		}

		return c.JSON(fiber.Map{
			"projects":   projects,
			"featured":   featured,
			"background": background,
		})
	})
}

// projectsQuery holds query parameters for the projects endpoint.
type projectsQuery struct {
	Status string `validate:"omitempty,oneof=working testing dev unstable archived stable"`
}
