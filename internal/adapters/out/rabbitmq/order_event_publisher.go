// Package rabbitmq publishes order events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ridehail/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// DefaultExchange receives every OrderChanged event.
	DefaultExchange = "ridehail.orders"

	// DefaultQueueSize is how many events may wait for the broker.
	DefaultQueueSize = 256

	publishTimeout = 5 * time.Second
	minBackoff     = time.Second
	maxBackoff     = 30 * time.Second
)

var (
	ErrQueueFull       = errors.New("order event queue is full")
	ErrPublisherClosed = errors.New("order event publisher is closed")
	ErrNotConnected    = errors.New("rabbitmq is not connected")
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
	Close() error
}

// connector opens a channel with the exchange declared.
type connector func() (channel, error)

// OrderEventPublisher implements ports.OrderEventPublisher. Events are routed
// by "order.<status>", so consumers can bind to e.g. "order.on-going".
//
// Publish only enqueues. A single worker sends the events in order and
// redials after the broker closes the channel.
type OrderEventPublisher struct {
	connect  connector
	exchange string
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.RWMutex
	stopped  bool
	queue    chan ports.OrderChanged
	done     chan struct{}
	closeErr error

	// Owned by the worker.
	ch      channel
	closed  chan *amqp.Error
	backoff time.Duration
	retryAt time.Time
}

// Dial connects to url, declares exchange as a durable topic exchange and
// starts the publishing worker.
func Dial(url, exchange string, logger *slog.Logger) (*OrderEventPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	connect := func() (channel, error) { return openChannel(url, exchange) }
	ch, err := connect()
	if err != nil {
		return nil, err
	}

	p := newOrderEventPublisher(connect, exchange, logger, DefaultQueueSize)
	p.attach(ch)
	p.start()
	return p, nil
}

func openChannel(url, exchange string) (channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return connChannel{Channel: ch, conn: conn}, nil
}

// connChannel closes its connection along with the channel.
type connChannel struct {
	*amqp.Channel
	conn *amqp.Connection
}

func (c connChannel) Close() error {
	err := c.Channel.Close()
	if cErr := c.conn.Close(); cErr != nil && err == nil {
		err = cErr
	}
	return err
}

func newOrderEventPublisher(connect connector, exchange string, logger *slog.Logger, queueSize int) *OrderEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &OrderEventPublisher{
		connect:  connect,
		exchange: exchange,
		logger:   logger.With("component", "order_event_publisher"),
		now:      time.Now,
		queue:    make(chan ports.OrderChanged, queueSize),
		done:     make(chan struct{}),
	}
}

func (p *OrderEventPublisher) start() {
	go p.run()
}

// Publish enqueues event without waiting for the broker.
func (p *OrderEventPublisher) Publish(_ context.Context, event ports.OrderChanged) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPublisherClosed
	}
	select {
	case p.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events, sends what is queued and closes the channel.
func (p *OrderEventPublisher) Close() error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		<-p.done
		return nil
	}
	p.stopped = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return p.closeErr
}

func (p *OrderEventPublisher) run() {
	defer close(p.done)

	for event := range p.queue {
		if err := p.send(event); err != nil {
			p.logger.Error("order event not published",
				"order_id", event.OrderID,
				"status", event.Status,
				"error", err,
			)
		}
	}

	if p.ch != nil {
		p.closeErr = p.ch.Close()
	}
}

func (p *OrderEventPublisher) send(event ports.OrderChanged) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = ch.PublishWithContext(ctx, p.exchange, RoutingKey(event), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.OrderID + ":" + event.Status,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		p.drop()
		return fmt.Errorf("publish order event: %w", err)
	}

	p.logger.Debug("order event published", "order_id", event.OrderID, "status", event.Status)
	return nil
}

// channel returns the open channel, redialing when the broker closed it.
// Failed dials back off from minBackoff up to maxBackoff; events arriving
// in between fail with ErrNotConnected.
func (p *OrderEventPublisher) channel() (channel, error) {
	if p.ch != nil {
		select {
		case amqpErr := <-p.closed:
			p.logger.Warn("rabbitmq channel closed", "error", amqpErr)
			p.drop()
		default:
			return p.ch, nil
		}
	}

	if p.now().Before(p.retryAt) {
		return nil, ErrNotConnected
	}

	ch, err := p.connect()
	if err != nil {
		p.backoff = nextBackoff(p.backoff)
		p.retryAt = p.now().Add(p.backoff)
		return nil, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}

	p.attach(ch)
	p.logger.Info("rabbitmq channel opened", "exchange", p.exchange)
	return ch, nil
}

func (p *OrderEventPublisher) attach(ch channel) {
	p.ch = ch
	p.closed = ch.NotifyClose(make(chan *amqp.Error, 1))
	p.backoff = 0
	p.retryAt = time.Time{}
}

func (p *OrderEventPublisher) drop() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	p.ch = nil
	p.closed = nil
}

func nextBackoff(current time.Duration) time.Duration {
	if current == 0 {
		return minBackoff
	}
	next := time.Duration(float64(current) * 1.5)
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

// RoutingKey is the topic an event is published under.
func RoutingKey(event ports.OrderChanged) string {
	return "order." + event.Status
}
