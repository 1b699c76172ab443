package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SummaryMetricDTO struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Caption string `json:"caption,omitempty"`
	Tone    string `json:"tone"`
}

type PriorityDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// VelocityDTO carries the raw runway coverage alongside a [0,200]-clamped
// progress percent for progress-bar consumers.
type VelocityDTO struct {
	PledgedAmount         float64 `json:"pledged_amount"`
	DaysElapsed           int     `json:"days_elapsed"`
	DaysLeft              int     `json:"days_left"`
	AvgDaily              float64 `json:"avg_daily"`
	GapToGoal             float64 `json:"gap_to_goal"`
	RequiredDaily         float64 `json:"required_daily"`
	ProjectedAmount       float64 `json:"projected_amount"`
	RunwayCoveragePercent float64 `json:"runway_coverage_percent"`
	ProgressPercent       float64 `json:"progress_percent"`
}

type WeeklyCashDTO struct {
	TrailingTotal float64 `json:"trailing_total"`
	PriorTotal    float64 `json:"prior_total"`
	HasPriorData  bool    `json:"has_prior_data"`
}

type CommunityDTO struct {
	AvgTicket          float64 `json:"avg_ticket"`
	RepeatRate         float64 `json:"repeat_rate"`
	NewBackers7d       int     `json:"new_backers_7d"`
	HighValueShare     float64 `json:"high_value_share"`
	HighValueThreshold float64 `json:"high_value_threshold"`
	TotalPledges       int     `json:"total_pledges"`
	UniqueBackers      int     `json:"unique_backers"`
}

type RewardStatusDTO struct {
	RewardID       string   `json:"reward_id"`
	Title          string   `json:"title"`
	Claimed        int      `json:"claimed"`
	TotalQuantity  *int     `json:"total_quantity,omitempty"`
	Remaining      *int     `json:"remaining,omitempty"`
	RemainingRatio *float64 `json:"remaining_ratio,omitempty"`
	Revenue        float64  `json:"revenue"`
}

type FulfillmentDTO struct {
	TotalCommittedValue float64           `json:"total_committed_value"`
	RewardStatuses      []RewardStatusDTO `json:"reward_statuses"`
	LowInventoryRewards []RewardStatusDTO `json:"low_inventory_rewards"`
	TopRewardsByRevenue []RewardStatusDTO `json:"top_rewards_by_revenue"`
}

type TimelinePointDTO struct {
	Day        int     `json:"day"`
	Amount     float64 `json:"amount"`
	Cumulative float64 `json:"cumulative"`
}

type FounderOpsDTO struct {
	CampaignID     string             `json:"campaign_id"`
	GeneratedAt    string             `json:"generated_at"`
	Source         string             `json:"source"`
	SummaryMetrics []SummaryMetricDTO `json:"summary_metrics"`
	Priorities     []PriorityDTO      `json:"priorities"`
	Velocity       VelocityDTO        `json:"velocity"`
	WeeklyCash     WeeklyCashDTO      `json:"weekly_cash"`
	Community      CommunityDTO       `json:"community"`
	Fulfillment    *FulfillmentDTO    `json:"fulfillment,omitempty"`
	Timeline       []TimelinePointDTO `json:"timeline,omitempty"`
}

type FounderOpsResponse struct {
	Status    string        `json:"status"`
	Data      FounderOpsDTO `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type VelocityResponse struct {
	Status    string      `json:"status"`
	Data      VelocityDTO `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type CommunityResponse struct {
	Status    string       `json:"status"`
	Data      CommunityDTO `json:"data"`
	Timestamp string       `json:"timestamp"`
}

type FulfillmentResponse struct {
	Status    string          `json:"status"`
	Data      *FulfillmentDTO `json:"data"`
	Timestamp string          `json:"timestamp"`
}

type CreateReportRequest struct {
	Note string `json:"note,omitempty"`
}

type ReportDTO struct {
	ReportID    string        `json:"report_id"`
	CampaignID  string        `json:"campaign_id"`
	GeneratedAt string        `json:"generated_at"`
	Metrics     FounderOpsDTO `json:"metrics"`
}

type CreateReportResponse struct {
	Status    string    `json:"status"`
	Data      ReportDTO `json:"data"`
	Replayed  bool      `json:"replayed"`
	Timestamp string    `json:"timestamp"`
}

type ListReportsResponse struct {
	Status string `json:"status"`
	Data   struct {
		TotalCount int         `json:"total_count"`
		Items      []ReportDTO `json:"items"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}
