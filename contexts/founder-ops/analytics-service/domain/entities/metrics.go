package entities

import "time"

type Severity string
type Tone string
type MetricsSourceKind string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeveritySuccess  Severity = "success"

	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
	ToneWarning  Tone = "warning"

	MetricsSourceLocal       MetricsSourceKind = "local"
	MetricsSourcePrecomputed MetricsSourceKind = "precomputed"
)

func IsSupportedSeverity(value Severity) bool {
	switch value {
	case SeverityCritical, SeverityWarning, SeverityInfo, SeveritySuccess:
		return true
	default:
		return false
	}
}

func IsSupportedTone(value Tone) bool {
	switch value {
	case TonePositive, ToneNeutral, ToneWarning:
		return true
	default:
		return false
	}
}

// VelocityMetrics is the pace-and-projection block. RunwayCoveragePercent is
// kept raw; progress-bar consumers clamp at the transport layer.
type VelocityMetrics struct {
	PledgedAmount         float64
	DaysElapsed           int
	DaysLeft              int
	AvgDaily              float64
	GapToGoal             float64
	RequiredDaily         float64
	ProjectedAmount       float64
	RunwayCoveragePercent float64
}

// WeeklyCash compares the trailing 7-day pledge total against the prior
// 7-day window. HasPriorData is false when no dated pledge fell in the
// prior window.
type WeeklyCash struct {
	TrailingTotal float64
	PriorTotal    float64
	HasPriorData  bool
}

type CommunityMetrics struct {
	AvgTicket          float64
	RepeatRate         float64
	NewBackers7d       int
	HighValueShare     float64
	HighValueThreshold float64
	TotalPledges       int
	UniqueBackers      int
}

// RewardStatus is the per-tier inventory readout. Remaining and
// RemainingRatio are nil for unlimited tiers.
type RewardStatus struct {
	RewardID       string
	Title          string
	Claimed        int
	TotalQuantity  *int
	Remaining      *int
	RemainingRatio *float64
	Revenue        float64
}

type FulfillmentMetrics struct {
	TotalCommittedValue float64
	RewardStatuses      []RewardStatus
	LowInventoryRewards []RewardStatus
	TopRewardsByRevenue []RewardStatus
}

type SummaryMetric struct {
	Key     string
	Label   string
	Value   string
	Caption string
	Tone    Tone
}

type Priority struct {
	Title       string
	Description string
	Severity    Severity
}

// TimelinePoint is one day of the cumulative funding series. Day zero is the
// campaign start (or the earliest dated pledge when no start date exists).
type TimelinePoint struct {
	Day        int
	Amount     float64
	Cumulative float64
}

// FounderOpsMetrics is the engine's sole output: a fresh, plain document per
// derivation, safe to serialize as-is.
type FounderOpsMetrics struct {
	CampaignID     string
	GeneratedAt    time.Time
	Source         MetricsSourceKind
	SummaryMetrics []SummaryMetric
	Priorities     []Priority
	Velocity       VelocityMetrics
	WeeklyCash     WeeklyCash
	Community      CommunityMetrics
	Fulfillment    *FulfillmentMetrics
	Timeline       []TimelinePoint
}
