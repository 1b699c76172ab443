package application

import (
	"time"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
)

const (
	dayDuration        = 24 * time.Hour
	trailingWindowDays = 7

	// Timeline length cap; anything older collapses into day zero.
	maxTimelineDays = 365
)

// BucketPledges partitions dated pledges into the trailing 7-day window
// [now-6d, now] and the prior 7-day window [now-13d, now-7d). Pledges
// without a timestamp, or dated after now, fall into neither bucket.
func BucketPledges(pledges []entities.Pledge, now time.Time) entities.WeeklyCash {
	trailingStart := now.Add(-(trailingWindowDays - 1) * dayDuration)
	priorStart := trailingStart.Add(-trailingWindowDays * dayDuration)

	var out entities.WeeklyCash
	for _, pledge := range pledges {
		if pledge.CreatedAt == nil {
			continue
		}
		at := pledge.CreatedAt.UTC()
		switch {
		case at.After(now):
		case !at.Before(trailingStart):
			out.TrailingTotal += pledge.Amount
		case !at.Before(priorStart):
			out.PriorTotal += pledge.Amount
			out.HasPriorData = true
		}
	}
	return out
}

func inTrailingWindow(at time.Time, now time.Time) bool {
	start := now.Add(-(trailingWindowDays - 1) * dayDuration)
	return !at.Before(start) && !at.After(now)
}

// BuildTimeline produces the cumulative day-indexed funding series from
// start to now. Pledges dated before start land on day zero; undated
// pledges are excluded.
func BuildTimeline(pledges []entities.Pledge, start time.Time, now time.Time) []entities.TimelinePoint {
	if now.Before(start) {
		return nil
	}
	span := ceilDays(now.Sub(start))
	if span < 1 {
		span = 1
	}
	if span > maxTimelineDays {
		span = maxTimelineDays
	}

	daily := make([]float64, span)
	for _, pledge := range pledges {
		if pledge.CreatedAt == nil {
			continue
		}
		at := pledge.CreatedAt.UTC()
		if at.After(now) {
			continue
		}
		day := int(at.Sub(start) / dayDuration)
		if day < 0 {
			day = 0
		}
		if day >= span {
			day = span - 1
		}
		daily[day] += pledge.Amount
	}

	points := make([]entities.TimelinePoint, 0, span)
	var cumulative float64
	for day, amount := range daily {
		cumulative += amount
		points = append(points, entities.TimelinePoint{
			Day:        day,
			Amount:     amount,
			Cumulative: cumulative,
		})
	}
	return points
}

// earliestPledgeTime scans the full list for the minimum timestamp instead
// of trusting any positional ordering convention.
func earliestPledgeTime(pledges []entities.Pledge) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, pledge := range pledges {
		if pledge.CreatedAt == nil {
			continue
		}
		at := pledge.CreatedAt.UTC()
		if !found || at.Before(earliest) {
			earliest = at
			found = true
		}
	}
	return earliest, found
}

func ceilDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	days := int(d / dayDuration)
	if d%dayDuration > 0 {
		days++
	}
	return days
}
