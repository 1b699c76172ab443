package application

import (
	"math"
	"time"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
	"founderops/contexts/founder-ops/analytics-service/ports"
)

// MetricsSnapshot is the numeric core every source must produce. Summary
// rows, tones, and priorities are derived from it in exactly one place
// (ComposeFounderOps), regardless of where the numbers came from.
type MetricsSnapshot struct {
	Velocity    entities.VelocityMetrics
	WeeklyCash  entities.WeeklyCash
	Community   entities.CommunityMetrics
	Fulfillment *entities.FulfillmentMetrics
	Timeline    []entities.TimelinePoint
	Source      entities.MetricsSourceKind
}

// MetricsSource derives the numeric snapshot for one campaign. The bool
// result reports whether the source could serve; callers try sources in
// preference order.
type MetricsSource interface {
	Derive(
		campaign entities.Campaign,
		pledges []entities.Pledge,
		rewards []entities.Reward,
		now time.Time,
	) (MetricsSnapshot, bool)
}

// LocalComputedMetricsSource runs the full derivation engine over the raw
// snapshot. It always serves.
type LocalComputedMetricsSource struct {
	HighValueThreshold float64
}

func (s LocalComputedMetricsSource) Derive(
	campaign entities.Campaign,
	pledges []entities.Pledge,
	rewards []entities.Reward,
	now time.Time,
) (MetricsSnapshot, bool) {
	snapshot := MetricsSnapshot{
		Velocity:    ComputeVelocity(campaign, pledges, now),
		WeeklyCash:  BucketPledges(pledges, now),
		Community:   AnalyzeCommunity(pledges, now, s.HighValueThreshold),
		Fulfillment: AnalyzeRewards(rewards),
		Source:      entities.MetricsSourceLocal,
	}

	timelineStart, ok := timelineStart(campaign, pledges)
	if ok {
		snapshot.Timeline = BuildTimeline(pledges, timelineStart, now.UTC())
	}
	return snapshot, true
}

// RemoteMetricsSource adapts a backend-precomputed document. It declines
// when the document is absent or malformed, letting local computation take
// over without duplicating any threshold logic.
type RemoteMetricsSource struct {
	Document  ports.PrecomputedFounderOps
	Available bool
}

func (s RemoteMetricsSource) Derive(
	_ entities.Campaign,
	_ []entities.Pledge,
	_ []entities.Reward,
	_ time.Time,
) (MetricsSnapshot, bool) {
	if !s.Available || !wellFormedPrecomputed(s.Document) {
		return MetricsSnapshot{}, false
	}
	return MetricsSnapshot{
		Velocity:    s.Document.Velocity,
		WeeklyCash:  s.Document.WeeklyCash,
		Community:   s.Document.Community,
		Fulfillment: s.Document.Fulfillment,
		Source:      entities.MetricsSourcePrecomputed,
	}, true
}

// ComposeFounderOps turns a numeric snapshot into the final metrics
// document, applying the shared tone/severity rules.
func ComposeFounderOps(campaignID string, snapshot MetricsSnapshot, now time.Time) entities.FounderOpsMetrics {
	return entities.FounderOpsMetrics{
		CampaignID:     campaignID,
		GeneratedAt:    now.UTC(),
		Source:         snapshot.Source,
		SummaryMetrics: BuildSummaryMetrics(snapshot.Velocity, snapshot.WeeklyCash),
		Priorities:     SynthesizePriorities(snapshot.Velocity, snapshot.Fulfillment, snapshot.Community),
		Velocity:       snapshot.Velocity,
		WeeklyCash:     snapshot.WeeklyCash,
		Community:      snapshot.Community,
		Fulfillment:    snapshot.Fulfillment,
		Timeline:       snapshot.Timeline,
	}
}

func timelineStart(campaign entities.Campaign, pledges []entities.Pledge) (time.Time, bool) {
	if campaign.StartDate != nil {
		return campaign.StartDate.UTC(), true
	}
	return earliestPledgeTime(pledges)
}

func wellFormedPrecomputed(doc ports.PrecomputedFounderOps) bool {
	values := []float64{
		doc.Velocity.PledgedAmount,
		doc.Velocity.AvgDaily,
		doc.Velocity.GapToGoal,
		doc.Velocity.RequiredDaily,
		doc.Velocity.ProjectedAmount,
		doc.Velocity.RunwayCoveragePercent,
		doc.WeeklyCash.TrailingTotal,
		doc.WeeklyCash.PriorTotal,
		doc.Community.AvgTicket,
		doc.Community.RepeatRate,
		doc.Community.HighValueShare,
	}
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return false
		}
	}
	if doc.Velocity.DaysElapsed < 1 || doc.Velocity.DaysLeft < 0 {
		return false
	}
	if doc.Community.TotalPledges < 0 ||
		doc.Community.UniqueBackers < 0 ||
		doc.Community.NewBackers7d < 0 {
		return false
	}
	return true
}
