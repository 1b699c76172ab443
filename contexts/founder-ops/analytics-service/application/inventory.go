package application

import (
	"sort"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
)

const (
	lowInventoryRatio = 0.30
	topRewardCount    = 3
)

// AnalyzeRewards computes per-tier inventory and revenue. Returns nil when
// no reward data is available so callers can omit the fulfillment block.
func AnalyzeRewards(rewards []entities.Reward) *entities.FulfillmentMetrics {
	if len(rewards) == 0 {
		return nil
	}

	statuses := make([]entities.RewardStatus, 0, len(rewards))
	var committed float64
	for _, reward := range rewards {
		status := entities.RewardStatus{
			RewardID: reward.RewardID,
			Title:    reward.Title,
			Claimed:  reward.BackersCount,
			Revenue:  reward.Revenue(),
		}
		if reward.TotalQuantity != nil && *reward.TotalQuantity > 0 {
			quantity := *reward.TotalQuantity
			remaining, _ := reward.Remaining()
			ratio := float64(remaining) / float64(quantity)
			status.TotalQuantity = &quantity
			status.Remaining = &remaining
			status.RemainingRatio = &ratio
		}
		committed += status.Revenue
		statuses = append(statuses, status)
	}

	low := make([]entities.RewardStatus, 0)
	for _, status := range statuses {
		if status.RemainingRatio != nil && *status.RemainingRatio <= lowInventoryRatio {
			low = append(low, status)
		}
	}

	// Stable sort keeps input order on revenue ties.
	top := append([]entities.RewardStatus(nil), statuses...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Revenue > top[j].Revenue })
	if len(top) > topRewardCount {
		top = top[:topRewardCount]
	}

	return &entities.FulfillmentMetrics{
		TotalCommittedValue: committed,
		RewardStatuses:      statuses,
		LowInventoryRewards: low,
		TopRewardsByRevenue: top,
	}
}
