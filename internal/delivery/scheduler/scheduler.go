// Package scheduler runs the recurring maintenance jobs: the story expiry
// sweeps and the nightly subscription downgrade.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"vitrina/config"
	"vitrina/internal/delivery"
	"vitrina/internal/domain/lifecycle"
	"vitrina/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config         *config.Config
	Logger         *slog.Logger
	StoryUC        usecase.StoryUsecase
	SubscriptionUC usecase.SubscriptionUsecase
}

// deepSweepAge is how long past expiry a story must be before the weekly
// deep sweep removes it. The daily sweep handles fresher rows.
const deepSweepAge = 7 * 24 * time.Hour

func deepSweepCutoff(now time.Time) time.Time {
	return now.Add(-deepSweepAge)
}

type scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	done   chan struct{}
}

// NewScheduler builds the cron-backed scheduler. Every job runs under
// SkipIfStillRunning so overlapping runs of the same job cannot race.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	cronLogger := &cronSlogLogger{logger: params.Logger}
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cronLogger),
		cron.Recover(cronLogger),
	))

	s := &scheduler{
		cron:   c,
		logger: params.Logger,
		done:   make(chan struct{}),
	}

	sweep := params.Config.Sweep
	jobs := []struct {
		name string
		spec string
		run  func(ctx context.Context) error
	}{
		{
			name: "story expiry sweep",
			spec: sweep.StoryDaily,
			run: func(ctx context.Context) error {
				_, err := params.StoryUC.SweepExpired(ctx, time.Now())

				return err
			},
		},
		{
			// Catches rows the daily sweep missed. Only stories expired
			// for more than a week are eligible.
			name: "story deep sweep",
			spec: sweep.StoryWeekly,
			run: func(ctx context.Context) error {
				_, err := params.StoryUC.SweepExpired(ctx, deepSweepCutoff(time.Now()))

				return err
			},
		},
		{
			name: "subscription expiry",
			spec: sweep.SubscriptionExpiry,
			run: func(ctx context.Context) error {
				_, err := params.SubscriptionUC.ExpireDue(ctx, time.Now())

				return err
			},
		},
	}

	for _, job := range jobs {
		if _, err := c.AddFunc(job.spec, s.wrap(job.name, job.run)); err != nil {
			return nil, errors.Wrapf(err, "failed to schedule %s", job.name)
		}
	}

	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func (s *scheduler) wrap(name string, run func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		start := time.Now()
		if err := run(ctx); err != nil {
			s.logger.Error("Scheduled job failed",
				slog.String("job", name),
				slog.Any("error", err),
			)

			return
		}

		s.logger.Debug("Scheduled job finished",
			slog.String("job", name),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}

// Serve starts the cron loop and blocks until the scheduler is stopped.
func (s *scheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting scheduler")
	s.cron.Start()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-s.done:
		return nil
	}
}

func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down scheduler")

	stopCtx := s.cron.Stop()
	close(s.done)

	select {
	case <-stopCtx.Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// cronSlogLogger adapts slog to the cron.Logger interface.
type cronSlogLogger struct {
	logger *slog.Logger
}

func (l *cronSlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, slog.Any("details", keysAndValues))
}

func (l *cronSlogLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, slog.Any("error", err), slog.Any("details", keysAndValues))
}
