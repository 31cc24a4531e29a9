package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, raw string) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		payload := make(map[string]interface{})
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			t.Fatalf("failed to parse log line %q: %v", line, err)
		}
		out = append(out, payload)
	}
	return out
}

func TestBufferedLoggerReplaysInOrder(t *testing.T) {
	buffer := NewEventBuffer(0)
	buffered := NewBufferedLogger(buffer).With("component", "tui")

	ctx := WithCorrelationID(context.Background(), "run-1")
	buffered.Debug(ctx, "first", "step", 1)
	buffered.Warn(ctx, "second")
	buffered.Error(ctx, "third")

	if buffer.Len() != 3 {
		t.Fatalf("expected 3 buffered entries, got %d", buffer.Len())
	}

	var buf bytes.Buffer
	delegate, err := New(Options{Writer: &buf, Level: "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	buffer.Flush(delegate)

	lines := decodeLines(t, buf.String())
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	wantMessages := []string{"first", "second", "third"}
	wantLevels := []string{"debug", "warn", "error"}
	for i, line := range lines {
		if line["message"] != wantMessages[i] || line["level"] != wantLevels[i] {
			t.Fatalf("line %d: got %v/%v", i, line["message"], line["level"])
		}
		if line["component"] != "tui" {
			t.Fatalf("expected component field on line %d, got %v", i, line["component"])
		}
		if line["correlation_id"] != "run-1" {
			t.Fatalf("expected correlation id on line %d, got %v", i, line["correlation_id"])
		}
	}
	if buffer.Len() != 0 {
		t.Fatalf("expected flush to empty the buffer, got %d", buffer.Len())
	}
}

func TestEventBufferDropsOldestWhenFull(t *testing.T) {
	buffer := NewEventBuffer(2)
	logger := NewBufferedLogger(buffer)
	logger.Info(context.Background(), "a")
	logger.Info(context.Background(), "b")
	logger.Info(context.Background(), "c")

	var buf bytes.Buffer
	delegate, err := New(Options{Writer: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	buffer.Flush(delegate)

	lines := decodeLines(t, buf.String())
	if len(lines) != 3 {
		t.Fatalf("expected 2 entries and an overflow warning, got %d lines", len(lines))
	}
	if lines[0]["message"] != "b" || lines[1]["message"] != "c" {
		t.Fatalf("expected oldest entry dropped, got %v, %v", lines[0]["message"], lines[1]["message"])
	}
	if lines[2]["message"] != "log buffer overflowed" || lines[2]["dropped"] != float64(1) {
		t.Fatalf("unexpected overflow warning %v", lines[2])
	}
}

func TestEventBufferFlushNilDelegate(t *testing.T) {
	buffer := NewEventBuffer(1)
	NewBufferedLogger(buffer).Info(context.Background(), "kept")
	buffer.Flush(nil)
	if buffer.Len() != 1 {
		t.Fatalf("expected entries to stay buffered, got %d", buffer.Len())
	}
}
