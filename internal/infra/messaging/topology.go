// Package messaging carries funnel-stage events between the booking flow and the CRM worker.
package messaging

import (
	"context"

	"lane-booking/internal/pkg/config"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// stage events are published under funnel.stage on a topic exchange so other CRM queues can bind funnel.#
const (
	stageRoutingKey = "funnel.stage"
	exchangeKind    = amqp.ExchangeTopic
)

// Handler applies one stage event; commands.ClientCommands.AdvanceFunnel satisfies it.
type Handler func(ctx context.Context, event shared.StageEvent) error

type topology struct {
	exchange string
	queue    string
}

func topologyFrom(cfg config.AMQPConfig) topology {
	return topology{exchange: cfg.Exchange, queue: cfg.Queue}
}

// declare is idempotent; durable so events survive broker restarts.
func (t topology) declare(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(t.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "declare exchange")
	}
	if _, err := ch.QueueDeclare(t.queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "declare queue")
	}
	if err := ch.QueueBind(t.queue, stageRoutingKey, t.exchange, false, nil); err != nil {
		return errs.Wrap(err, "bind queue")
	}
	return nil
}
