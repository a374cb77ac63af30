package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
)

const warmingUserLimit = 10

// Scheduler runs the periodic background jobs. Currently that is the
// analytics cache warming pass, which rebuilds the report for the most
// active users so dashboard loads hit the cache.
type Scheduler struct {
	cron      *cron.Cron
	userRepo  repositories.UserRepository
	analytics *services.AnalyticsService
}

// NewScheduler creates a new job scheduler.
func NewScheduler(userRepo repositories.UserRepository, analytics *services.AnalyticsService) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		userRepo:  userRepo,
		analytics: analytics,
	}
}

// Start registers the jobs and starts the cron loop. Job failures are
// logged and retried on the next tick, never fatal.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@every 5m", s.warmAnalyticsCache); err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Msg("job scheduler started")
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("job scheduler stopped")
}

func (s *Scheduler) warmAnalyticsCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	users, err := s.userRepo.Top(ctx, warmingUserLimit)
	if err != nil {
		log.Warn().Err(err).Msg("cache warming: failed to list top users")
		return
	}

	warmed := 0
	for _, user := range users {
		if _, err := s.analytics.Build(ctx, user.ID); err != nil {
			log.Warn().Err(err).Str("user_id", user.ID).Msg("cache warming: failed to build report")
			continue
		}
		warmed++
	}

	log.Debug().Int("warmed", warmed).Msg("analytics cache warming pass complete")
}
