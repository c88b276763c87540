package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/mkryukov/personal-site-content/internal/content"
	"github.com/mkryukov/personal-site-content/internal/weather"
)

// Warmer periodically re-runs the demand-driven weather refresh so page
// views usually hit a warm cache. It only ever writes the cache file; the
// profile document stays read-only.
type Warmer struct {
	scheduler   *gocron.Scheduler
	manager     *weather.Manager
	profilePath string
	interval    time.Duration
}

// New creates a new Warmer.
func New(manager *weather.Manager, profilePath string, interval time.Duration) *Warmer {
	s := gocron.NewScheduler(time.UTC)
	return &Warmer{
		scheduler:   s,
		manager:     manager,
		profilePath: profilePath,
		interval:    interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// A zero interval disables warming entirely.
func (w *Warmer) Start() error {
	if w.interval <= 0 {
		log.Println("scheduler: cache warming disabled")
		return nil
	}

	minutes := int(w.interval.Minutes())
	if minutes <= 0 {
		minutes = 1
	}

	_, err := w.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		profile := content.LoadProfile(w.profilePath)
		if text := w.manager.Resolve(ctx, profile); text == profile.WeatherText {
			log.Printf("scheduler: weather unchanged for %s", profile.WeatherLocationName)
		} else {
			log.Printf("scheduler: weather cache warmed for %s", profile.WeatherLocationName)
		}
	})
	if err != nil {
		return err
	}

	w.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (w *Warmer) Stop() {
	if w.scheduler != nil {
		w.scheduler.Stop()
	}
}
