package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
	domainerrors "founderops/contexts/founder-ops/analytics-service/domain/errors"
	"founderops/contexts/founder-ops/analytics-service/ports"
)

func TestStoreSeedsDemoCampaign(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	campaign, err := store.GetCampaign(ctx, "camp-aurora-deck")
	if err != nil {
		t.Fatalf("expected seeded campaign, got %v", err)
	}
	if campaign.GoalAmount != 5_000_000 {
		t.Fatalf("unexpected seeded goal: %f", campaign.GoalAmount)
	}

	pledges, err := store.ListPledges(ctx, "camp-aurora-deck")
	if err != nil {
		t.Fatalf("list pledges failed: %v", err)
	}
	if len(pledges) != 6 {
		t.Fatalf("expected 6 seeded pledges, got %d", len(pledges))
	}

	if _, err := store.GetCampaign(ctx, "camp-unknown"); !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected not found for unknown campaign, got %v", err)
	}
}

func TestStoreListsAreCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	pledges, _ := store.ListPledges(ctx, "camp-aurora-deck")
	pledges[0].Amount = -1

	again, _ := store.ListPledges(ctx, "camp-aurora-deck")
	if again[0].Amount == -1 {
		t.Fatalf("expected defensive copy of pledge list")
	}
}

func TestStoreIdempotencyExpiry(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	record := ports.IdempotencyRecord{
		Key:         "idem-1",
		RequestHash: "hash-1",
		Payload:     []byte(`{}`),
		ExpiresAt:   now.Add(time.Hour),
	}
	if err := store.Put(ctx, record); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if _, found, _ := store.Get(ctx, "idem-1", now); !found {
		t.Fatalf("expected live record found")
	}
	if _, found, _ := store.Get(ctx, "idem-1", now.Add(2*time.Hour)); found {
		t.Fatalf("expected expired record dropped")
	}

	// Re-put with a different hash conflicts while the record is live.
	if err := store.Put(ctx, record); err != nil {
		t.Fatalf("re-put failed: %v", err)
	}
	conflicting := record
	conflicting.RequestHash = "hash-2"
	if err := store.Put(ctx, conflicting); !errors.Is(err, domainerrors.ErrIdempotencyConflict) {
		t.Fatalf("expected conflict for differing hash, got %v", err)
	}
}

func TestStoreReportOrderingAndLimit(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		report := ports.ReportSnapshot{
			ReportID:    store.nextID("rep"),
			CampaignID:  "camp-aurora-deck",
			GeneratedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.CreateReport(ctx, report); err != nil {
			t.Fatalf("create report failed: %v", err)
		}
	}

	reports, err := store.ListReports(ctx, "camp-aurora-deck", 3)
	if err != nil {
		t.Fatalf("list reports failed: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected limit applied, got %d", len(reports))
	}
	for i := 1; i < len(reports); i++ {
		if reports[i].GeneratedAt.After(reports[i-1].GeneratedAt) {
			t.Fatalf("expected newest-first ordering")
		}
	}
}

func TestStoreOutboxLifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	err := store.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:      "evt-1",
		EventType:    "founderops.report.created",
		OccurredAt:   time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		PartitionKey: "camp-aurora-deck",
	})
	if err != nil {
		t.Fatalf("append outbox failed: %v", err)
	}

	pending, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one pending event, got %d", len(pending))
	}

	if err := store.MarkOutboxPublished(ctx, pending[0].OutboxID, time.Now()); err != nil {
		t.Fatalf("mark published failed: %v", err)
	}
	pending, _ = store.ListPendingOutbox(ctx, 10)
	if len(pending) != 0 {
		t.Fatalf("expected empty pending list after publish, got %d", len(pending))
	}

	if err := store.MarkOutboxPublished(ctx, "obx-missing", time.Now()); err == nil {
		t.Fatalf("expected error for unknown outbox id")
	}
}

func TestStoreSetCampaignReplacesSnapshot(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	store.SetCampaign(entities.Campaign{CampaignID: "camp-new", GoalAmount: 100}, []entities.Pledge{
		{PledgeID: "plg-1", UserID: "u1", Amount: 50},
	}, nil)

	campaign, err := store.GetCampaign(ctx, "camp-new")
	if err != nil {
		t.Fatalf("expected campaign stored, got %v", err)
	}
	if campaign.GoalAmount != 100 {
		t.Fatalf("unexpected goal: %f", campaign.GoalAmount)
	}

	store.SetCampaign(entities.Campaign{CampaignID: "camp-new", GoalAmount: 200}, nil, nil)
	campaign, _ = store.GetCampaign(ctx, "camp-new")
	if campaign.GoalAmount != 200 {
		t.Fatalf("expected snapshot replaced, got %f", campaign.GoalAmount)
	}
	pledges, _ := store.ListPledges(ctx, "camp-new")
	if len(pledges) != 0 {
		t.Fatalf("expected pledges replaced, got %d", len(pledges))
	}
}
