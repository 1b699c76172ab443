package application

import (
	"time"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
)

// DefaultHighValueThreshold marks a pledge as high value. The unit matches
// whatever minor currency unit the caller aggregates in.
const DefaultHighValueThreshold = 500_000

// AnalyzeCommunity derives backer-base health from the pledge list alone.
// Anonymous pledges (empty user id) count toward totals but never toward
// distinct-backer figures.
func AnalyzeCommunity(pledges []entities.Pledge, now time.Time, highValueThreshold float64) entities.CommunityMetrics {
	if highValueThreshold <= 0 {
		highValueThreshold = DefaultHighValueThreshold
	}
	now = now.UTC()

	backers := make(map[string]struct{})
	recentBackers := make(map[string]struct{})
	var totalAmount, highValueAmount float64
	for _, pledge := range pledges {
		totalAmount += pledge.Amount
		if pledge.Amount >= highValueThreshold {
			highValueAmount += pledge.Amount
		}
		if pledge.UserID == "" {
			continue
		}
		backers[pledge.UserID] = struct{}{}
		if pledge.CreatedAt != nil && inTrailingWindow(pledge.CreatedAt.UTC(), now) {
			recentBackers[pledge.UserID] = struct{}{}
		}
	}

	out := entities.CommunityMetrics{
		HighValueThreshold: highValueThreshold,
		TotalPledges:       len(pledges),
		UniqueBackers:      len(backers),
		NewBackers7d:       len(recentBackers),
	}
	if out.TotalPledges > 0 {
		out.AvgTicket = totalAmount / float64(out.TotalPledges)
		repeat := float64(out.TotalPledges-out.UniqueBackers) / float64(out.TotalPledges)
		if repeat < 0 {
			repeat = 0
		}
		out.RepeatRate = repeat
	}
	if totalAmount > 0 {
		out.HighValueShare = highValueAmount / totalAmount
	}
	return out
}
