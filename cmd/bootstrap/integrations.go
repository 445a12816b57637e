package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lane-booking/internal/infra/messaging"
	"lane-booking/internal/infra/metrics"
	"lane-booking/internal/infra/payment"
	"lane-booking/internal/infra/ratelimit"
	"lane-booking/internal/pkg/config"
	"lane-booking/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integrations",
	fx.Provide(
		NewRedisClient,
		NewRateLimiter,
		NewStageNotifier,
		NewPaymentLinker,
		NewMetrics,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

// NewRateLimiter shares buckets across instances through Redis when it answers at startup,
// and keeps them in process otherwise. It returns nil when limiting is disabled.
func NewRateLimiter(cfg config.Config, rdb *redis.Client, logger *slog.Logger) ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	rule := ratelimit.Rule{Requests: cfg.RateLimit.Requests, Window: cfg.RateLimit.Window}

	if rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err := rdb.Ping(ctx).Err()
		if err == nil {
			logger.Info("rate limiter backed by redis", "addr", cfg.Redis.Addr)
			return ratelimit.NewRedisLimiter(rdb, rule)
		}
		logger.Warn("redis unreachable, using in-process rate limiter", "error", err.Error())
	}
	return ratelimit.NewLocalLimiter(rule)
}

// NewStageNotifier queues funnel events for a RabbitMQ publisher goroutine and consumes them back
// into the CRM. Without AMQP_URL the events are applied in process.
func NewStageNotifier(lc fx.Lifecycle, cfg config.Config, clients commands.ClientCommands, logger *slog.Logger) (commands.StageNotifier, error) {
	if cfg.AMQP.URL == "" {
		return messaging.NewDirectNotifier(clients.AdvanceFunnel), nil
	}

	publisher, err := messaging.NewPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}
	consumer := messaging.NewConsumer(cfg.AMQP, clients.AdvanceFunnel)
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = publisher.Run(ctx)
			}()
			go func() {
				defer wg.Done()
				_ = consumer.Run(ctx)
			}()
			logger.Info("funnel publisher and consumer started", "exchange", cfg.AMQP.Exchange, "queue", cfg.AMQP.Queue)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return publisher.Close()
		},
	})
	return publisher, nil
}

// NewPaymentLinker yields a nil interface, never a typed nil, when no provider token is set.
func NewPaymentLinker(cfg config.Config, logger *slog.Logger) commands.PaymentLinker {
	client := payment.NewClient(cfg.Payment)
	if client == nil {
		logger.Info("payment provider not configured, bookings complete manually")
		return nil
	}
	return client
}

func NewMetrics() commands.Metrics {
	return metrics.Register()
}
