package application

import (
	"testing"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
)

func TestAnalyzeRewardsNilWithoutCatalog(t *testing.T) {
	if got := AnalyzeRewards(nil); got != nil {
		t.Fatalf("expected nil fulfillment for empty catalog, got %+v", got)
	}
}

func TestAnalyzeRewardsLowInventoryDetection(t *testing.T) {
	rewards := []entities.Reward{
		{RewardID: "rw-1", Title: "Deluxe", MinPledgedAmount: 5_000, TotalQuantity: intPtr(10), BackersCount: 8},
		{RewardID: "rw-2", Title: "Standard", MinPledgedAmount: 1_000, TotalQuantity: intPtr(100), BackersCount: 40},
		{RewardID: "rw-3", Title: "Digital", MinPledgedAmount: 500, BackersCount: 200},
	}

	fulfillment := AnalyzeRewards(rewards)
	if fulfillment == nil {
		t.Fatalf("expected fulfillment metrics")
	}

	if len(fulfillment.LowInventoryRewards) != 1 {
		t.Fatalf("expected exactly one low-stock tier, got %d", len(fulfillment.LowInventoryRewards))
	}
	low := fulfillment.LowInventoryRewards[0]
	if low.RewardID != "rw-1" {
		t.Fatalf("expected rw-1 flagged, got %s", low.RewardID)
	}
	if low.RemainingRatio == nil || !almostEqual(*low.RemainingRatio, 0.2) {
		t.Fatalf("expected remaining ratio 0.2, got %v", low.RemainingRatio)
	}

	// Unlimited tiers carry no quantity fields and are never low stock.
	for _, status := range fulfillment.RewardStatuses {
		if status.RewardID != "rw-3" {
			continue
		}
		if status.TotalQuantity != nil || status.Remaining != nil || status.RemainingRatio != nil {
			t.Fatalf("expected unlimited tier without inventory fields: %+v", status)
		}
	}
}

func TestAnalyzeRewardsExactThresholdCountsAsLow(t *testing.T) {
	rewards := []entities.Reward{
		{RewardID: "rw-1", Title: "Edge", MinPledgedAmount: 1_000, TotalQuantity: intPtr(10), BackersCount: 7},
	}

	fulfillment := AnalyzeRewards(rewards)
	if len(fulfillment.LowInventoryRewards) != 1 {
		t.Fatalf("expected 30%% remaining to count as low stock")
	}
}

func TestAnalyzeRewardsOversoldTierClampsRemaining(t *testing.T) {
	rewards := []entities.Reward{
		{RewardID: "rw-1", Title: "Oversold", MinPledgedAmount: 1_000, TotalQuantity: intPtr(5), BackersCount: 9},
	}

	fulfillment := AnalyzeRewards(rewards)
	status := fulfillment.RewardStatuses[0]
	if status.Remaining == nil || *status.Remaining != 0 {
		t.Fatalf("expected remaining clamped to zero, got %v", status.Remaining)
	}
	if status.RemainingRatio == nil || *status.RemainingRatio != 0 {
		t.Fatalf("expected zero remaining ratio, got %v", status.RemainingRatio)
	}
}

func TestAnalyzeRewardsTopThreeByRevenue(t *testing.T) {
	rewards := []entities.Reward{
		{RewardID: "rw-a", Title: "A", MinPledgedAmount: 100, BackersCount: 10}, // 1000
		{RewardID: "rw-b", Title: "B", MinPledgedAmount: 500, BackersCount: 10}, // 5000
		{RewardID: "rw-c", Title: "C", MinPledgedAmount: 200, BackersCount: 10}, // 2000
		{RewardID: "rw-d", Title: "D", MinPledgedAmount: 50, BackersCount: 10},  // 500
		{RewardID: "rw-e", Title: "E", MinPledgedAmount: 500, BackersCount: 10}, // 5000, ties with B
	}

	fulfillment := AnalyzeRewards(rewards)

	if len(fulfillment.TopRewardsByRevenue) != 3 {
		t.Fatalf("expected top 3, got %d", len(fulfillment.TopRewardsByRevenue))
	}
	top := fulfillment.TopRewardsByRevenue
	// Stable sort keeps catalog order on the revenue tie between B and E.
	if top[0].RewardID != "rw-b" || top[1].RewardID != "rw-e" || top[2].RewardID != "rw-c" {
		t.Fatalf("unexpected top ordering: %s %s %s", top[0].RewardID, top[1].RewardID, top[2].RewardID)
	}
	if fulfillment.TotalCommittedValue != 13_500 {
		t.Fatalf("expected committed value 13500, got %f", fulfillment.TotalCommittedValue)
	}

	// The full status list keeps catalog order.
	if fulfillment.RewardStatuses[0].RewardID != "rw-a" {
		t.Fatalf("expected status list in catalog order, got %s first", fulfillment.RewardStatuses[0].RewardID)
	}
}
