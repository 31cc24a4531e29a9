package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cadence/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/cadence/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
)

func TestPlanFailures_ReportsAfterPreview(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf, Level: "warn", Format: "json"})
	require.NoError(t, err)

	ctx := context.Background()
	publisher := events.NewLoggingPublisher(nil)
	failures, err := tallyPlanFailures(publisher)
	require.NoError(t, err)
	require.Equal(t, 1, publisher.SubscriberCount(ports.EventPlanFailed))

	require.NoError(t, publisher.Publish(ctx, events.Event{Type: ports.EventPlanComputed}))
	require.NoError(t, publisher.Publish(ctx, events.Event{Type: ports.EventPlanFailed, Data: map[string]interface{}{"error": errors.New("speed out of range")}}))
	require.NoError(t, publisher.Publish(ctx, events.Event{Type: ports.EventPlanFailed, Data: map[string]interface{}{"error": errors.New("unknown kind \"sparkle\"")}}))

	count, last := failures.snapshot()
	require.Equal(t, 2, count)
	require.Equal(t, "unknown kind \"sparkle\"", last)

	failures.report(ctx, logger)
	require.Zero(t, publisher.SubscriberCount(ports.EventPlanFailed))
	require.Contains(t, buf.String(), "preview skipped invalid recomputations")
	require.Contains(t, buf.String(), `"failures":2`)
}

func TestPlanFailures_QuietWhenEveryPassSucceeds(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf, Level: "debug", Format: "json"})
	require.NoError(t, err)

	publisher := events.NewLoggingPublisher(nil)
	failures, err := tallyPlanFailures(publisher)
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), events.Event{Type: ports.EventPlanComputed}))
	failures.report(context.Background(), logger)

	require.Empty(t, buf.String())
}
