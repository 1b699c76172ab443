package entities

import "time"

// Campaign is the read-only fundraising snapshot the engine derives metrics
// from. CurrentAmount is authoritative when present; a nil value means the
// pledge sum is the fallback total.
type Campaign struct {
	CampaignID    string
	Title         string
	GoalAmount    float64
	CurrentAmount *float64
	StartDate     *time.Time
	EndDate       *time.Time
}

// Pledge is an immutable contribution event. An empty UserID marks an
// anonymous pledge: counted in totals, excluded from unique-backer counts.
// A nil CreatedAt excludes the pledge from time-windowed calculations only.
type Pledge struct {
	PledgeID  string
	UserID    string
	Amount    float64
	CreatedAt *time.Time
}

// Reward is a catalog tier. A nil TotalQuantity means unlimited supply.
type Reward struct {
	RewardID         string
	Title            string
	MinPledgedAmount float64
	TotalQuantity    *int
	BackersCount     int
}

// Remaining reports unclaimed units for a limited reward. The second return
// is false for unlimited rewards.
func (r Reward) Remaining() (int, bool) {
	if r.TotalQuantity == nil {
		return 0, false
	}
	remaining := *r.TotalQuantity - r.BackersCount
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// Revenue is the committed value of the tier at its minimum pledge price.
func (r Reward) Revenue() float64 {
	if r.MinPledgedAmount <= 0 || r.BackersCount <= 0 {
		return 0
	}
	return r.MinPledgedAmount * float64(r.BackersCount)
}
