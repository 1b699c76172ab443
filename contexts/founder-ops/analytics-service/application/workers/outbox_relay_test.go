package workers_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"founderops/contexts/founder-ops/analytics-service/adapters/memory"
	"founderops/contexts/founder-ops/analytics-service/application/workers"
	"founderops/contexts/founder-ops/analytics-service/ports"
)

type capturePublisher struct {
	published []publishedEvent
	fail      bool
}

type publishedEvent struct {
	topic string
	event ports.EventEnvelope
}

func (p *capturePublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	if p.fail {
		return fmt.Errorf("broker unavailable")
	}
	p.published = append(p.published, publishedEvent{topic: topic, event: event})
	return nil
}

func appendEvent(t *testing.T, store *memory.Store, eventID string) {
	t.Helper()
	err := store.AppendOutbox(context.Background(), ports.EventEnvelope{
		EventID:       eventID,
		EventType:     "founderops.report.created",
		OccurredAt:    time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		SourceService: "founder-ops/analytics-service",
		SchemaVersion: 1,
		PartitionKey:  "camp-relay",
	})
	if err != nil {
		t.Fatalf("append outbox failed: %v", err)
	}
}

func TestOutboxRelayPublishesAndMarks(t *testing.T) {
	store := memory.NewStore()
	publisher := &capturePublisher{}
	appendEvent(t, store, "evt-1")
	appendEvent(t, store, "evt-2")

	relay := workers.OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}

	if len(publisher.published) != 2 {
		t.Fatalf("expected 2 published events, got %d", len(publisher.published))
	}
	if publisher.published[0].topic != "founderops.report.created" {
		t.Fatalf("expected event type as topic, got %q", publisher.published[0].topic)
	}
	if publisher.published[0].event.EventID != "evt-1" {
		t.Fatalf("expected envelope round-trip, got %q", publisher.published[0].event.EventID)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected all events marked published, %d still pending", len(pending))
	}
}

func TestOutboxRelayLeavesEventsPendingOnPublishFailure(t *testing.T) {
	store := memory.NewStore()
	publisher := &capturePublisher{fail: true}
	appendEvent(t, store, "evt-3")

	relay := workers.OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}
	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected relay error on publish failure")
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected event to stay pending for retry, got %d", len(pending))
	}
}

func TestOutboxRelayEmptyQueueIsNoOp(t *testing.T) {
	store := memory.NewStore()
	publisher := &capturePublisher{}

	relay := workers.OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}
	if len(publisher.published) != 0 {
		t.Fatalf("expected no publishes on empty queue, got %d", len(publisher.published))
	}
}
