package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"lane-booking/internal/pkg/config"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishBacklogFull = errs.New("funnel event backlog full")

const (
	defaultBufferSize     = 256
	defaultDialTimeout    = 5 * time.Second
	defaultPublishTimeout = 5 * time.Second
)

// Publisher implements commands.StageNotifier over RabbitMQ. Notify only enqueues; Run owns the
// broker connection, so a slow or unreachable broker never holds up the caller.
type Publisher struct {
	url            string
	topology       topology
	dialTimeout    time.Duration
	publishTimeout time.Duration
	events         chan shared.StageEvent

	// conn and ch are only touched by Run and Close
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(cfg config.AMQPConfig) (*Publisher, error) {
	if _, err := amqp.ParseURI(cfg.URL); err != nil {
		return nil, errs.Wrap(err, "parse AMQP_URL")
	}
	p := &Publisher{
		url:            cfg.URL,
		topology:       topologyFrom(cfg),
		dialTimeout:    orDefault(cfg.DialTimeout, defaultDialTimeout),
		publishTimeout: orDefault(cfg.PublishTimeout, defaultPublishTimeout),
	}
	size := cfg.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	p.events = make(chan shared.StageEvent, size)
	return p, nil
}

// Notify never blocks: the event is dropped with ErrPublishBacklogFull when the buffer is full.
func (p *Publisher) Notify(_ context.Context, event shared.StageEvent) error {
	select {
	case p.events <- event:
		return nil
	default:
		return errs.Mark(errs.Newf("dropped %s event for client %s", event.Stage, event.ClientID), ErrPublishBacklogFull)
	}
}

// Run publishes queued events until ctx is done. A failed publish drops the connection so the
// next event redials; the failed event itself is logged and lost.
func (p *Publisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			if pending := len(p.events); pending > 0 {
				slog.Warn("funnel publisher stopped with queued events", "dropped", pending)
			}
			return ctx.Err()
		case event := <-p.events:
			if err := p.publish(ctx, event); err != nil {
				slog.Warn("funnel event not published",
					"client_id", event.ClientID,
					"stage", event.Stage.String(),
					"error", err.Error())
			}
		}
	}
}

func (p *Publisher) publish(ctx context.Context, event shared.StageEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal stage event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		p.closeLocked()
		if err := p.connectLocked(); err != nil {
			return err
		}
	}

	publishCtx, cancel := context.WithTimeout(ctx, p.publishTimeout)
	defer cancel()
	err = p.ch.PublishWithContext(publishCtx, p.topology.exchange, stageRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.closeLocked()
		return errs.Wrap(err, "publish stage event")
	}
	return nil
}

func (p *Publisher) connectLocked() error {
	conn, err := dial(p.url, p.dialTimeout)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "open channel")
	}
	if err := p.topology.declare(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}
	p.conn, p.ch = conn, ch
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *Publisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// dial bounds both the TCP connect and the AMQP handshake by timeout.
func dial(url string, timeout time.Duration) (*amqp.Connection, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		return nil, errs.Wrap(err, "dial broker")
	}
	return conn, nil
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
