package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"marketplace-core/internal/pkg/config"
	"marketplace-core/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPNotifier publishes messages as persistent JSON to a durable queue on the default exchange.
type AMQPNotifier struct {
	conn  *amqp.Connection
	queue string

	mu sync.Mutex // amqp channels are not safe for concurrent publishing
	ch *amqp.Channel
}

func NewAMQPNotifier(cfg config.NotifyConfig) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, errs.Wrap(err, "amqp dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp open channel")
	}
	if _, err := ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp declare queue "+cfg.Queue)
	}

	return &AMQPNotifier{conn: conn, ch: ch, queue: cfg.Queue}, nil
}

func (n *AMQPNotifier) Notify(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	err = n.ch.PublishWithContext(ctx,
		"",      // default exchange
		n.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         string(msg.Event),
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "amqp publish")
	}
	return nil
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	chErr := n.ch.Close()
	if err := n.conn.Close(); err != nil {
		return errs.Wrap(err, "amqp close connection")
	}
	if chErr != nil {
		return errs.Wrap(chErr, "amqp close channel")
	}
	return nil
}
