// Package limiter implements the sign-in attempt throttle backed by Redis.
package limiter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lens/config"
	"lens/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisParams defines the dependencies for the Redis client.
type RedisParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	LC     fx.Lifecycle
}

// NewRedisClient creates the Redis client used by the sign-in throttle and
// hooks its shutdown into the Fx lifecycle.
func NewRedisClient(params RedisParams) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// The throttle fails open, so an unreachable Redis is not fatal.
				params.Logger.LogAttrs(ctx, slog.LevelWarn, "redis unreachable, sign-in throttle will fail open",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client
}

// redisLoginLimiter implements service.LoginLimiter with a fixed-window
// counter per email and per source IP.
type redisLoginLimiter struct {
	client      *redis.Client
	logger      *slog.Logger
	enabled     bool
	maxAttempts int
	cooldown    time.Duration
}

// NewLoginLimiter is the constructor for redisLoginLimiter.
func NewLoginLimiter(cfg *config.Config, client *redis.Client, logger *slog.Logger) service.LoginLimiter {
	l := &redisLoginLimiter{
		client: client,
		logger: logger,
	}
	if cfg.LoginThrottle != nil {
		l.enabled = cfg.LoginThrottle.Enabled
		l.maxAttempts = cfg.LoginThrottle.MaxAttempts
		l.cooldown = cfg.LoginThrottle.Cooldown
	}

	return l
}

// Enforce counts one sign-in attempt against the email and IP budgets.
// Store errors are logged and swallowed so an unavailable Redis never locks
// users out.
func (l *redisLoginLimiter) Enforce(ctx context.Context, email, ip string) error {
	if !l.enabled || l.client == nil {
		return nil
	}

	if email != "" {
		if err := l.enforceKey(ctx, loginEmailKey(email)); err != nil {
			return err
		}
	}

	if ip != "" {
		if err := l.enforceKey(ctx, loginIPKey(ip)); err != nil {
			return err
		}
	}

	return nil
}

func (l *redisLoginLimiter) enforceKey(ctx context.Context, key string) error {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.LogAttrs(ctx, slog.LevelWarn, "sign-in throttle store unavailable, failing open",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil
	}

	// First hit in the window starts the cooldown clock.
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.cooldown).Err(); err != nil {
			l.logger.LogAttrs(ctx, slog.LevelWarn, "sign-in throttle store unavailable, failing open",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return nil
		}
	}

	if count > int64(l.maxAttempts) {
		return service.ErrLoginRateLimited
	}

	return nil
}

func loginEmailKey(email string) string {
	return "login:email:" + strings.ToLower(email)
}

func loginIPKey(ip string) string {
	return "login:ip:" + ip
}
