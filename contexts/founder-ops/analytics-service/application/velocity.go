package application

import (
	"time"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
)

// Assumed campaign age when neither a start date nor a dated pledge exists.
const defaultDaysElapsed = 30

// ComputeVelocity derives pace, gap, and a linear projection from the
// campaign snapshot. Every division is guarded; the function is total over
// all valid inputs, including empty pledge lists and a zero goal.
func ComputeVelocity(campaign entities.Campaign, pledges []entities.Pledge, now time.Time) entities.VelocityMetrics {
	now = now.UTC()
	pledged := PledgedAmount(campaign, pledges)

	daysElapsed := defaultDaysElapsed
	switch {
	case campaign.StartDate != nil:
		daysElapsed = atLeastOneDay(now.Sub(campaign.StartDate.UTC()))
	default:
		if earliest, ok := earliestPledgeTime(pledges); ok {
			daysElapsed = atLeastOneDay(now.Sub(earliest))
		}
	}

	daysLeft := 0
	if campaign.EndDate != nil {
		daysLeft = ceilDays(campaign.EndDate.UTC().Sub(now))
	}

	avgDaily := pledged / float64(daysElapsed)

	gap := campaign.GoalAmount - pledged
	if gap < 0 {
		gap = 0
	}

	requiredDaily := 0.0
	if daysLeft > 0 {
		requiredDaily = gap / float64(daysLeft)
	}

	// Campaign is effectively closed once daysLeft hits zero; no further
	// growth is assumed.
	projected := pledged
	if daysLeft > 0 {
		projected = avgDaily * float64(daysElapsed+daysLeft)
	}

	runway := 0.0
	if campaign.GoalAmount > 0 {
		runway = projected / campaign.GoalAmount * 100
	}

	return entities.VelocityMetrics{
		PledgedAmount:         pledged,
		DaysElapsed:           daysElapsed,
		DaysLeft:              daysLeft,
		AvgDaily:              avgDaily,
		GapToGoal:             gap,
		RequiredDaily:         requiredDaily,
		ProjectedAmount:       projected,
		RunwayCoveragePercent: runway,
	}
}

// PledgedAmount prefers the campaign's authoritative running total and
// falls back to summing the pledge list.
func PledgedAmount(campaign entities.Campaign, pledges []entities.Pledge) float64 {
	if campaign.CurrentAmount != nil {
		return *campaign.CurrentAmount
	}
	var total float64
	for _, pledge := range pledges {
		total += pledge.Amount
	}
	return total
}

// ClampRunwayPercent bounds the raw runway coverage for progress-bar style
// consumers. The unclamped value stays on the metric itself.
func ClampRunwayPercent(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 200 {
		return 200
	}
	return value
}

func atLeastOneDay(d time.Duration) int {
	days := ceilDays(d)
	if days < 1 {
		return 1
	}
	return days
}
