package background

import (
	"context"
	"log"
	"time"

	"bodegamart/internal/caching"
	"bodegamart/internal/jobs"
	"bodegamart/internal/repositories"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages the background jobs: the periodic low-stock scan and
// the daily cache flush.
type JobScheduler struct {
	scheduler   gocron.Scheduler
	alertSvc    *jobs.StockAlertService
	cacheSvc    caching.CacheService
	profileRepo repositories.ProfileRepository
	jobsByName  map[string]gocron.Job
}

func NewJobScheduler(alertSvc *jobs.StockAlertService, cacheSvc caching.CacheService, profileRepo repositories.ProfileRepository) *JobScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler:   scheduler,
		alertSvc:    alertSvc,
		cacheSvc:    cacheSvc,
		profileRepo: profileRepo,
		jobsByName:  make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	// Low-stock scan - every 30 minutes
	alertsJob, err := js.scheduler.NewJob(
		gocron.DurationJob(30*time.Minute),
		gocron.NewTask(js.scanLowStock),
		gocron.WithName("stock-alerts"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create stock alerts job: %v", err)
	} else {
		js.jobsByName["stock-alerts"] = alertsJob
	}

	// Daily full cache flush bounds staleness from any missed invalidation
	cacheJob, err := js.scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(js.flushCache),
		gocron.WithName("cache-flush"),
	)
	if err != nil {
		log.Printf("Failed to create cache flush job: %v", err)
	} else {
		js.jobsByName["cache-flush"] = cacheJob
	}
}

func (js *JobScheduler) scanLowStock() {
	ctx := context.Background()

	profiles, err := js.profileRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Stock alert scan failed to list profiles: %v", err)
		return
	}

	for _, profile := range profiles {
		alerts, err := js.alertSvc.CheckLowStock(ctx, profile.ID)
		if err != nil {
			continue
		}
		js.alertSvc.LogLowStockAlerts(ctx, alerts)
	}
}

func (js *JobScheduler) flushCache() {
	if err := js.cacheSvc.InvalidateAllCache(context.Background()); err != nil {
		log.Printf("Cache flush failed: %v", err)
	}
}
