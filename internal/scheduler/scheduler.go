package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/adiouf/finsight/internal/config"
	"github.com/adiouf/finsight/internal/domain/models"
	"github.com/adiouf/finsight/internal/repository/mongodb"
	"github.com/adiouf/finsight/pkg/clients/webhook"
)

// DigestBuilder produces the scheduled roundup of the dataset.
type DigestBuilder interface {
	BuildDigest(now time.Time) models.Digest
}

// Scheduler manages the recurring digest job.
type Scheduler struct {
	cron     *cron.Cron
	builder  DigestBuilder
	history  mongodb.Repository
	notifier webhook.Client
	cfg      config.DigestConfig
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. history and notifier may
// be nil; the digest is still built and logged.
func NewScheduler(cfg config.DigestConfig, builder DigestBuilder, history mongodb.Repository, notifier webhook.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to UTC", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.UTC
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location)),
		builder:  builder,
		history:  history,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.publishDigest); err != nil {
		s.logger.Error("failed to schedule digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) publishDigest() {
	s.logger.Info("generating digest")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	digest := s.builder.BuildDigest(time.Now().UTC())
	if len(digest.Sections) == 0 {
		s.logger.Warn("digest has no sections, skipping publish")
		return
	}

	if s.history != nil {
		if err := s.history.SaveDigest(ctx, digest); err != nil {
			s.logger.Error("failed to archive digest", zap.Error(err))
		}
	}

	if s.notifier != nil {
		if err := s.notifier.PostDigest(ctx, digest); err != nil {
			s.logger.Error("failed to push digest", zap.Error(err))
			return
		}
	}

	s.logger.Info("digest published", zap.Int("sections", len(digest.Sections)))
}
