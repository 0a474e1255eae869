// Package event provides best-effort domain event publishing to the
// message bus. Publish outcomes are decoupled from request/response
// correctness: a mutation's response must never depend on bus health, so
// failures reduce to a log line and a metric instead of propagating.
package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mealgrid/gateway/errors"
)

// Topics of the order domain events emitted after successful mutations.
const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusUpdated = "order.status_updated"
)

var (
	publishesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_events_published_total",
		Help: "Domain events successfully handed to the bus, by topic.",
	}, []string{"topic"})

	publishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_event_publish_failures_total",
		Help: "Domain event publishes that failed or were dropped, by topic.",
	}, []string{"topic"})
)

// Envelope wraps every domain event published to the bus.
type Envelope struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// OrderEvent is the payload of order mutation events: the mutated entity's
// identifier and its new state.
type OrderEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// Publisher publishes domain events over one long-lived NATS connection.
// A Publisher whose connection could not be established at gateway start is
// a permanent no-op rather than a startup failure.
type Publisher struct {
	conn     *nats.Conn
	logger   *slog.Logger
	degraded atomic.Bool
}

// Connect creates the publisher. On connection failure the publisher comes
// up degraded and every Publish becomes a logged no-op.
func Connect(url string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Publisher{logger: logger.With("component", "event-publisher")}

	conn, err := nats.Connect(url, nats.Name("mealgrid-gateway"))
	if err != nil {
		p.logger.Error("bus connection failed, publisher degraded to no-op",
			"url", url, "error", err)
		p.degraded.Store(true)
		return p
	}

	p.conn = conn
	p.logger.Info("event publisher connected", "url", url)
	return p
}

// NewPublisher creates a publisher over an existing connection. A nil
// connection yields a degraded publisher, same as a failed Connect.
func NewPublisher(conn *nats.Conn, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Publisher{conn: conn, logger: logger.With("component", "event-publisher")}
	if conn == nil {
		p.degraded.Store(true)
	}
	return p
}

// Degraded reports whether the publisher permanently drops events. A
// publisher without a connection is degraded regardless of how it was
// constructed.
func (p *Publisher) Degraded() bool {
	return p.degraded.Load() || p.conn == nil
}

// log returns the publisher's logger. Calling a degraded or zero-value
// publisher must always be harmless, so the logger is never assumed set.
func (p *Publisher) log() *slog.Logger {
	if p.logger == nil {
		return slog.Default()
	}
	return p.logger
}

// Publish emits a domain event to the bus. Best-effort: the returned error
// is informational and callers are permitted to ignore it; a failure is
// observable only through logs and metrics, never through the response of
// the mutation that triggered it.
func (p *Publisher) Publish(ctx context.Context, topic string, payload any) error {
	if p.Degraded() {
		publishFailures.WithLabelValues(topic).Inc()
		p.log().Debug("event dropped, publisher degraded", "topic", topic)
		return errors.WrapUnavailable(errors.ErrBusDegraded, "Publisher", "Publish", "publish "+topic)
	}

	env := Envelope{
		EventID:    uuid.NewString(),
		EventType:  topic,
		OccurredAt: time.Now().UTC(),
		Data:       payload,
	}
	data, err := json.Marshal(env)
	if err != nil {
		publishFailures.WithLabelValues(topic).Inc()
		p.log().Error("event payload marshal failed", "topic", topic, "error", err)
		return errors.WrapInternal(err, "Publisher", "Publish", "marshal "+topic)
	}

	if err := p.conn.Publish(topic, data); err != nil {
		publishFailures.WithLabelValues(topic).Inc()
		p.log().Error("event publish failed", "topic", topic, "error", err)
		return errors.WrapUnavailable(err, "Publisher", "Publish", "publish "+topic)
	}

	publishesTotal.WithLabelValues(topic).Inc()
	p.log().Debug("event published", "topic", topic, "event_id", env.EventID)
	return nil
}

// Close drains the bus connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
