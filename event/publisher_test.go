package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealgrid/gateway/errors"
)

func TestDegradedPublisherIsANoOp(t *testing.T) {
	// A publisher without a connection is degraded even when constructed
	// as a zero value; calling it must always be harmless.
	p := &Publisher{}

	err := p.Publish(context.Background(), TopicOrderCreated, OrderEvent{OrderID: "42", Status: "created"})

	// The error is informational; callers are permitted to ignore it.
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
	assert.True(t, p.Degraded())
}

func TestNewPublisherWithNilConnectionDegrades(t *testing.T) {
	p := NewPublisher(nil, nil)

	assert.True(t, p.Degraded())

	err := p.Publish(context.Background(), TopicOrderCreated, OrderEvent{OrderID: "42", Status: "created"})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestConnectWithUnreachableBusDegrades(t *testing.T) {
	p := Connect("nats://127.0.0.1:1", nil)

	assert.True(t, p.Degraded())

	// Publishing after a failed startup connection never panics and never
	// attempts the network.
	err := p.Publish(context.Background(), TopicOrderStatusUpdated, OrderEvent{OrderID: "42", Status: "ready"})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestEnvelopeWireShape(t *testing.T) {
	env := Envelope{
		EventID:    "evt-1",
		EventType:  TopicOrderCreated,
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Data:       OrderEvent{OrderID: "42", Status: "created"},
	}

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "evt-1", decoded["event_id"])
	assert.Equal(t, "order.created", decoded["event_type"])

	data, ok := decoded["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "42", data["order_id"])
	assert.Equal(t, "created", data["status"])
}
