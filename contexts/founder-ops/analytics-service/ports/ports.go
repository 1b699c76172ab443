package ports

import (
	"context"
	"time"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
	contractsv1 "founderops/contracts/gen/events/v1"
)

// SnapshotRepository loads the campaign state the engine derives metrics
// from. Callers are expected to fetch all three collections at roughly the
// same point in time; the engine does not reconcile skewed snapshots.
type SnapshotRepository interface {
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	ListPledges(ctx context.Context, campaignID string) ([]entities.Pledge, error)
	ListRewards(ctx context.Context, campaignID string) ([]entities.Reward, error)
}

// PrecomputedFounderOps is a backend-supplied numeric metrics document.
// Tones, severities, and summary rows are always re-derived locally so the
// threshold rules live in exactly one place.
type PrecomputedFounderOps struct {
	Velocity    entities.VelocityMetrics
	WeeklyCash  entities.WeeklyCash
	Community   entities.CommunityMetrics
	Fulfillment *entities.FulfillmentMetrics
	ComputedAt  time.Time
}

// PrecomputedProvider exposes server-side metrics when an upstream pipeline
// has published them. The bool result reports availability; errors mean the
// provider is degraded and the caller falls back to local computation.
type PrecomputedProvider interface {
	GetPrecomputedFounderOps(ctx context.Context, campaignID string) (PrecomputedFounderOps, bool, error)
}

type ReportSnapshot struct {
	ReportID    string
	CampaignID  string
	GeneratedAt time.Time
	Metrics     entities.FounderOpsMetrics
}

type ReportRepository interface {
	CreateReport(ctx context.Context, report ReportSnapshot) error
	ListReports(ctx context.Context, campaignID string, limit int) ([]ReportSnapshot, error)
}

type IdempotencyRecord struct {
	Key         string
	RequestHash string
	Payload     []byte
	ExpiresAt   time.Time
}

type IdempotencyStore interface {
	Get(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	Put(ctx context.Context, record IdempotencyRecord) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
