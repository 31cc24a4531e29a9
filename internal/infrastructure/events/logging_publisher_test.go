package events

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	logginginfra "github.com/alexisbeaulieu97/cadence/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer) ports.Logger {
	t.Helper()
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    buf,
		Level:     "debug",
		Layer:     "test",
		Component: "publisher",
	})
	require.NoError(t, err)
	return logger
}

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newTestLogger(t, buf))

	ctx := logginginfra.WithCorrelationID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, Event{
		Type: ports.EventPlanComputed,
		Data: map[string]interface{}{"catalog": "hero"},
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "domain event", entry["message"])
	require.Equal(t, ports.EventPlanComputed, entry["event_type"])
	require.Equal(t, "abc-123", entry["correlation_id"])
	require.Equal(t, "hero", entry["catalog"])
}

func TestLoggingPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(logginginfra.NewNoOpLogger())

	var handled int
	sub, err := publisher.Subscribe(ports.EventEnvironmentChanged, func(ctx context.Context, event ports.DomainEvent) error {
		handled++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, publisher.SubscriberCount(ports.EventEnvironmentChanged))

	require.NoError(t, publisher.Publish(context.Background(), Event{Type: ports.EventEnvironmentChanged}))
	require.NoError(t, publisher.Publish(context.Background(), Event{Type: ports.EventPlanFailed}))
	require.Equal(t, 1, handled)

	sub.Unsubscribe()
	sub.Unsubscribe()
	require.Equal(t, 0, publisher.SubscriberCount(ports.EventEnvironmentChanged))

	require.NoError(t, publisher.Publish(context.Background(), Event{Type: ports.EventEnvironmentChanged}))
	require.Equal(t, 1, handled)
}

func TestLoggingPublisherContinuesAfterHandlerFailure(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newTestLogger(t, buf))

	var reached bool
	_, err := publisher.Subscribe(ports.EventPlanFailed, func(context.Context, ports.DomainEvent) error {
		panic("boom")
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(ports.EventPlanFailed, func(context.Context, ports.DomainEvent) error {
		reached = true
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), Event{Type: ports.EventPlanFailed}))
	require.True(t, reached)
	require.True(t, strings.Contains(buf.String(), "handler panic: boom"))
}

func TestNilPublisherIsSafe(t *testing.T) {
	t.Parallel()

	var publisher *LoggingPublisher
	require.NoError(t, publisher.Publish(context.Background(), Event{Type: ports.EventPlanComputed}))
	sub, err := publisher.Subscribe(ports.EventPlanComputed, func(context.Context, ports.DomainEvent) error { return nil })
	require.NoError(t, err)
	sub.Unsubscribe()
}
