package application

import (
	"testing"
	"time"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
)

func TestAnalyzeCommunityRepeatRate(t *testing.T) {
	// 10 pledges across 7 distinct backers.
	users := []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u1", "u2", "u1"}
	pledges := make([]entities.Pledge, 0, len(users))
	for i, user := range users {
		pledges = append(pledges, entities.Pledge{
			PledgeID:  "plg-" + user,
			UserID:    user,
			Amount:    1_000,
			CreatedAt: timePtr(testNow.Add(-time.Duration(i) * time.Hour)),
		})
	}

	community := AnalyzeCommunity(pledges, testNow, 0)

	if community.TotalPledges != 10 {
		t.Fatalf("expected 10 pledges, got %d", community.TotalPledges)
	}
	if community.UniqueBackers != 7 {
		t.Fatalf("expected 7 unique backers, got %d", community.UniqueBackers)
	}
	if !almostEqual(community.RepeatRate, 0.3) {
		t.Fatalf("expected repeat rate 0.3, got %f", community.RepeatRate)
	}
	if !almostEqual(community.AvgTicket, 1_000) {
		t.Fatalf("expected avg ticket 1000, got %f", community.AvgTicket)
	}
	if community.HighValueThreshold != DefaultHighValueThreshold {
		t.Fatalf("expected default threshold, got %f", community.HighValueThreshold)
	}
}

func TestAnalyzeCommunityAnonymousPledges(t *testing.T) {
	pledges := []entities.Pledge{
		{PledgeID: "plg-1", UserID: "u1", Amount: 2_000, CreatedAt: timePtr(testNow)},
		{PledgeID: "plg-2", UserID: "", Amount: 4_000, CreatedAt: timePtr(testNow)},
	}

	community := AnalyzeCommunity(pledges, testNow, 0)

	if community.TotalPledges != 2 {
		t.Fatalf("expected anonymous pledge in totals, got %d", community.TotalPledges)
	}
	if community.UniqueBackers != 1 {
		t.Fatalf("expected anonymous pledge excluded from backers, got %d", community.UniqueBackers)
	}
	if community.NewBackers7d != 1 {
		t.Fatalf("expected one recent backer, got %d", community.NewBackers7d)
	}
	if !almostEqual(community.AvgTicket, 3_000) {
		t.Fatalf("expected avg ticket 3000, got %f", community.AvgTicket)
	}
}

func TestAnalyzeCommunityHighValueShare(t *testing.T) {
	pledges := []entities.Pledge{
		{PledgeID: "plg-1", UserID: "u1", Amount: 600_000, CreatedAt: timePtr(testNow)},
		{PledgeID: "plg-2", UserID: "u2", Amount: 200_000, CreatedAt: timePtr(testNow)},
		{PledgeID: "plg-3", UserID: "u3", Amount: 200_000, CreatedAt: timePtr(testNow)},
	}

	community := AnalyzeCommunity(pledges, testNow, 0)

	if !almostEqual(community.HighValueShare, 0.6) {
		t.Fatalf("expected high value share 0.6, got %f", community.HighValueShare)
	}

	// A custom threshold changes the classification.
	community = AnalyzeCommunity(pledges, testNow, 100_000)
	if !almostEqual(community.HighValueShare, 1) {
		t.Fatalf("expected full high value share with low threshold, got %f", community.HighValueShare)
	}
}

func TestAnalyzeCommunityNewBackersWindow(t *testing.T) {
	pledges := []entities.Pledge{
		{PledgeID: "plg-1", UserID: "u1", Amount: 1_000, CreatedAt: timePtr(testNow.Add(-2 * 24 * time.Hour))},
		{PledgeID: "plg-2", UserID: "u2", Amount: 1_000, CreatedAt: timePtr(testNow.Add(-10 * 24 * time.Hour))},
		{PledgeID: "plg-3", UserID: "u3", Amount: 1_000},
	}

	community := AnalyzeCommunity(pledges, testNow, 0)

	if community.NewBackers7d != 1 {
		t.Fatalf("expected one backer in the trailing window, got %d", community.NewBackers7d)
	}
	if community.UniqueBackers != 3 {
		t.Fatalf("expected 3 unique backers, got %d", community.UniqueBackers)
	}
}

func TestAnalyzeCommunityEmptyPledgeList(t *testing.T) {
	community := AnalyzeCommunity(nil, testNow, 0)

	if community.AvgTicket != 0 || community.RepeatRate != 0 || community.HighValueShare != 0 {
		t.Fatalf("expected zeroed ratios for empty list: %+v", community)
	}
}
