// Package worker contains background deliveries that run alongside the HTTP
// server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"lens/config"
	"lens/internal/delivery"
	"lens/internal/domain/repository"

	"go.uber.org/fx"
)

// sessionSweeper periodically purges expired session rows. Expired sessions
// are already rejected on lookup, so the sweep only bounds table growth.
type sessionSweeper struct {
	interval    time.Duration
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
	stop        chan struct{}
	done        chan struct{}
}

// SweeperParams holds dependencies for the session sweeper
type SweeperParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewSessionSweeper creates the background session cleanup delivery
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	sweeper := &sessionSweeper{
		interval:    params.Cfg.Auth.SessionSweepInterval,
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: sweeper.shutdown,
	})

	return sweeper, nil
}

// Serve runs the sweep loop until shutdown.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	if err := s.sessionRepo.DeleteExpired(ctx); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to purge expired sessions",
			slog.Any("error", err),
		)

		return
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "purged expired sessions")
}

func (s *sessionSweeper) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down session sweeper")
	close(s.stop)

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
