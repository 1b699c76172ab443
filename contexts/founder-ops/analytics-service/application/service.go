package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
	domainerrors "founderops/contexts/founder-ops/analytics-service/domain/errors"
	"founderops/contexts/founder-ops/analytics-service/ports"
)

// Service is the founder-ops metrics aggregator. A request loads one
// consistent campaign snapshot, then tries metric sources in preference
// order: precomputed (when the provider serves a well-formed document),
// local derivation otherwise. All reads are side-effect free.
type Service struct {
	Snapshots          ports.SnapshotRepository
	Reports            ports.ReportRepository
	Precomputed        ports.PrecomputedProvider
	Clock              ports.Clock
	HighValueThreshold float64
	Logger             *slog.Logger
}

func (s Service) GetFounderOps(ctx context.Context, campaignID string) (entities.FounderOpsMetrics, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return entities.FounderOpsMetrics{}, domainerrors.ErrInvalidRequest
	}

	campaign, err := s.Snapshots.GetCampaign(ctx, campaignID)
	if err != nil {
		return entities.FounderOpsMetrics{}, err
	}
	pledges, err := s.Snapshots.ListPledges(ctx, campaignID)
	if err != nil {
		return entities.FounderOpsMetrics{}, err
	}
	rewards, err := s.Snapshots.ListRewards(ctx, campaignID)
	if err != nil {
		return entities.FounderOpsMetrics{}, err
	}

	now := s.now()
	for _, source := range s.metricSources(ctx, campaignID) {
		if snapshot, ok := source.Derive(campaign, pledges, rewards, now); ok {
			return ComposeFounderOps(campaignID, snapshot, now), nil
		}
	}

	// Unreachable: the local source always serves. Kept as a hard default.
	snapshot, _ := s.localSource().Derive(campaign, pledges, rewards, now)
	return ComposeFounderOps(campaignID, snapshot, now), nil
}

func (s Service) GetVelocity(ctx context.Context, campaignID string) (entities.VelocityMetrics, error) {
	doc, err := s.GetFounderOps(ctx, campaignID)
	if err != nil {
		return entities.VelocityMetrics{}, err
	}
	return doc.Velocity, nil
}

func (s Service) GetCommunity(ctx context.Context, campaignID string) (entities.CommunityMetrics, error) {
	doc, err := s.GetFounderOps(ctx, campaignID)
	if err != nil {
		return entities.CommunityMetrics{}, err
	}
	return doc.Community, nil
}

// GetFulfillment returns nil without error when the campaign has no reward
// catalog; transport omits the block in that case.
func (s Service) GetFulfillment(ctx context.Context, campaignID string) (*entities.FulfillmentMetrics, error) {
	doc, err := s.GetFounderOps(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return doc.Fulfillment, nil
}

func (s Service) ListReports(ctx context.Context, campaignID string, limit int) ([]ports.ReportSnapshot, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	return s.Reports.ListReports(ctx, campaignID, limit)
}

func (s Service) metricSources(ctx context.Context, campaignID string) []MetricsSource {
	sources := make([]MetricsSource, 0, 2)
	if s.Precomputed != nil {
		doc, found, err := s.Precomputed.GetPrecomputedFounderOps(ctx, campaignID)
		switch {
		case err != nil:
			ResolveLogger(s.Logger).Warn("precomputed metrics provider degraded",
				"event", "founder_ops_precomputed_degraded",
				"module", "founder-ops/analytics-service",
				"layer", "application",
				"campaign_id", campaignID,
				"error", err.Error(),
			)
		case found:
			sources = append(sources, RemoteMetricsSource{Document: doc, Available: true})
		}
	}
	return append(sources, s.localSource())
}

func (s Service) localSource() LocalComputedMetricsSource {
	return LocalComputedMetricsSource{HighValueThreshold: s.HighValueThreshold}
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
