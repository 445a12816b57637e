package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"lane-booking/internal/pkg/config"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	prefetch   = 20
	maxBackoff = 30 * time.Second
)

// Consumer applies funnel-stage events from the queue until its context ends.
type Consumer struct {
	url         string
	topology    topology
	dialTimeout time.Duration
	handle      Handler
}

func NewConsumer(cfg config.AMQPConfig, handle Handler) *Consumer {
	return &Consumer{
		url:         cfg.URL,
		topology:    topologyFrom(cfg),
		dialTimeout: orDefault(cfg.DialTimeout, defaultDialTimeout),
		handle:      handle,
	}
}

// Run reconnects with exponential backoff and returns only when ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := dial(c.url, c.dialTimeout)
		if err == nil {
			backoff = time.Second
			err = c.consume(ctx, conn)
			_ = conn.Close()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		slog.Warn("funnel consumer disconnected, retrying",
			"error", err.Error(),
			"backoff", backoff.String())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		if backoff < maxBackoff {
			backoff *= 2
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open channel")
	}
	defer func() { _ = ch.Close() }()

	if err := c.topology.declare(ch); err != nil {
		return err
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return errs.Wrap(err, "set qos")
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.topology.queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "consume")
	}

	for d := range deliveries {
		switch c.process(ctx, d.Body, d.Redelivered) {
		case outcomeAck:
			_ = d.Ack(false)
		case outcomeRequeue:
			_ = d.Nack(false, true)
		default:
			_ = d.Nack(false, false)
		}
	}
	return errs.New("deliveries channel closed")
}

type outcome int

const (
	outcomeAck outcome = iota
	outcomeRequeue
	outcomeDrop
)

// process decides the fate of one delivery. Events for unknown clients or invalid stages are
// dropped; store failures are retried once through redelivery.
func (c *Consumer) process(ctx context.Context, body []byte, redelivered bool) outcome {
	var event shared.StageEvent
	if err := json.Unmarshal(body, &event); err != nil {
		slog.Error("malformed funnel event", "error", err.Error())
		return outcomeDrop
	}

	err := c.handle(ctx, event)
	switch {
	case err == nil:
		return outcomeAck
	case errs.Is(err, errs.ErrClientNotFound), errs.Is(err, errs.ErrValidation):
		slog.Warn("funnel event rejected",
			"client_id", event.ClientID,
			"stage", event.Stage.String(),
			"error", err.Error())
		return outcomeDrop
	case !redelivered:
		slog.Warn("funnel event failed, requeueing", "client_id", event.ClientID, "error", err.Error())
		return outcomeRequeue
	default:
		slog.Error("funnel event failed twice, dropping", "client_id", event.ClientID, "error", err.Error())
		return outcomeDrop
	}
}
