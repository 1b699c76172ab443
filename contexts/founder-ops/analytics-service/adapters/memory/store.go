package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
	domainerrors "founderops/contexts/founder-ops/analytics-service/domain/errors"
	"founderops/contexts/founder-ops/analytics-service/ports"
)

// Store is the in-memory adapter backing tests and the demo wiring. It
// implements every port of the analytics module.
type Store struct {
	mu sync.RWMutex

	FailPrecomputed bool

	campaigns   map[string]entities.Campaign
	pledges     map[string][]entities.Pledge
	rewards     map[string][]entities.Reward
	precomputed map[string]ports.PrecomputedFounderOps
	reports     map[string][]ports.ReportSnapshot
	idempotency map[string]ports.IdempotencyRecord
	outbox      []outboxRow
	sequence    uint64
}

type outboxRow struct {
	message     ports.OutboxMessage
	publishedAt *time.Time
}

func NewStore() *Store {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -14)
	end := now.AddDate(0, 0, 16)
	limited := 40

	pledgeAt := func(daysAgo int) *time.Time {
		at := now.AddDate(0, 0, -daysAgo)
		return &at
	}

	return &Store{
		campaigns: map[string]entities.Campaign{
			"camp-aurora-deck": {
				CampaignID: "camp-aurora-deck",
				Title:      "Aurora Deck - Second Printing",
				GoalAmount: 5_000_000,
				StartDate:  &start,
				EndDate:    &end,
			},
		},
		pledges: map[string][]entities.Pledge{
			"camp-aurora-deck": {
				{PledgeID: "plg-1", UserID: "backer-1", Amount: 550_000, CreatedAt: pledgeAt(12)},
				{PledgeID: "plg-2", UserID: "backer-2", Amount: 120_000, CreatedAt: pledgeAt(9)},
				{PledgeID: "plg-3", UserID: "backer-1", Amount: 80_000, CreatedAt: pledgeAt(8)},
				{PledgeID: "plg-4", UserID: "backer-3", Amount: 300_000, CreatedAt: pledgeAt(5)},
				{PledgeID: "plg-5", UserID: "backer-4", Amount: 95_000, CreatedAt: pledgeAt(2)},
				{PledgeID: "plg-6", UserID: "", Amount: 45_000, CreatedAt: pledgeAt(1)},
			},
		},
		rewards: map[string][]entities.Reward{
			"camp-aurora-deck": {
				{RewardID: "rw-core", Title: "Core deck", MinPledgedAmount: 45_000, BackersCount: 5},
				{RewardID: "rw-collector", Title: "Collector box", MinPledgedAmount: 120_000, TotalQuantity: &limited, BackersCount: 33},
			},
		},
		precomputed: map[string]ports.PrecomputedFounderOps{},
		reports:     map[string][]ports.ReportSnapshot{},
		idempotency: map[string]ports.IdempotencyRecord{},
	}
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if campaign, ok := s.campaigns[campaignID]; ok {
		return campaign, nil
	}
	return entities.Campaign{}, domainerrors.ErrCampaignNotFound
}

func (s *Store) ListPledges(_ context.Context, campaignID string) ([]entities.Pledge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Pledge(nil), s.pledges[campaignID]...), nil
}

func (s *Store) ListRewards(_ context.Context, campaignID string) ([]entities.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Reward(nil), s.rewards[campaignID]...), nil
}

func (s *Store) SetCampaign(campaign entities.Campaign, pledges []entities.Pledge, rewards []entities.Reward) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[campaign.CampaignID] = campaign
	s.pledges[campaign.CampaignID] = append([]entities.Pledge(nil), pledges...)
	s.rewards[campaign.CampaignID] = append([]entities.Reward(nil), rewards...)
}

func (s *Store) SetPrecomputed(campaignID string, doc ports.PrecomputedFounderOps) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.precomputed[campaignID] = doc
}

func (s *Store) GetPrecomputedFounderOps(_ context.Context, campaignID string) (ports.PrecomputedFounderOps, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailPrecomputed {
		return ports.PrecomputedFounderOps{}, false, fmt.Errorf("precomputed metrics store unavailable")
	}
	doc, ok := s.precomputed[campaignID]
	return doc, ok, nil
}

func (s *Store) CreateReport(_ context.Context, report ports.ReportSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.CampaignID] = append(s.reports[report.CampaignID], report)
	return nil
}

func (s *Store) ListReports(_ context.Context, campaignID string, limit int) ([]ports.ReportSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := append([]ports.ReportSnapshot(nil), s.reports[campaignID]...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].GeneratedAt.After(items[j].GeneratedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) Get(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.idempotency[key]
	if !ok {
		return ports.IdempotencyRecord{}, false, nil
	}
	if !record.ExpiresAt.IsZero() && now.UTC().After(record.ExpiresAt.UTC()) {
		delete(s.idempotency, key)
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) Put(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.idempotency[record.Key]; ok {
		if existing.RequestHash != record.RequestHash {
			return domainerrors.ErrIdempotencyConflict
		}
		return nil
	}
	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox = append(s.outbox, outboxRow{
		message: ports.OutboxMessage{
			OutboxID:     s.nextID("obx"),
			EventType:    envelope.EventType,
			PartitionKey: envelope.PartitionKey,
			Payload:      payload,
			CreatedAt:    envelope.OccurredAt,
		},
	})
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pending := make([]ports.OutboxMessage, 0, limit)
	for _, row := range s.outbox {
		if row.publishedAt != nil {
			continue
		}
		pending = append(pending, row.message)
		if limit > 0 && len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outbox {
		if s.outbox[i].message.OutboxID == outboxID {
			at := publishedAt.UTC()
			s.outbox[i].publishedAt = &at
			return nil
		}
	}
	return domainerrors.ErrReportNotFound
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return s.nextID("rep"), nil
}

func (s *Store) nextID(prefix string) string {
	n := atomic.AddUint64(&s.sequence, 1)
	if strings.TrimSpace(prefix) == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, n)
}

var _ ports.SnapshotRepository = (*Store)(nil)
var _ ports.PrecomputedProvider = (*Store)(nil)
var _ ports.ReportRepository = (*Store)(nil)
var _ ports.IdempotencyStore = (*Store)(nil)
var _ ports.OutboxWriter = (*Store)(nil)
var _ ports.OutboxRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
