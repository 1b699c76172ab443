package application

import (
	"fmt"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
)

const (
	newBackerFloor = 5
	newBackerRatio = 0.05
)

// SynthesizePriorities applies the operational threshold rules in fixed
// order. Every matching rule fires; the success entry is appended only when
// nothing else did, so the list is never empty.
func SynthesizePriorities(
	velocity entities.VelocityMetrics,
	fulfillment *entities.FulfillmentMetrics,
	community entities.CommunityMetrics,
) []entities.Priority {
	priorities := make([]entities.Priority, 0, 3)

	if velocity.RequiredDaily > 0 && velocity.AvgDaily < velocity.RequiredDaily {
		shortfall := velocity.RequiredDaily - velocity.AvgDaily
		priorities = append(priorities, entities.Priority{
			Severity: entities.SeverityCritical,
			Title:    "Fundraising pace insufficient",
			Description: fmt.Sprintf(
				"Daily pace is %s short of the %s per day needed to reach the goal.",
				FormatAmount(shortfall), FormatAmount(velocity.RequiredDaily),
			),
		})
	}

	if fulfillment != nil && len(fulfillment.LowInventoryRewards) > 0 {
		count := len(fulfillment.LowInventoryRewards)
		noun := "reward tiers are"
		if count == 1 {
			noun = "reward tier is"
		}
		priorities = append(priorities, entities.Priority{
			Severity: entities.SeverityWarning,
			Title:    "Fulfillment prep needed",
			Description: fmt.Sprintf(
				"%d %s at or below 30%% remaining stock. Line up fulfillment before the tiers sell out.",
				count, noun,
			),
		})
	}

	activationFloor := float64(newBackerFloor)
	if scaled := float64(community.UniqueBackers) * newBackerRatio; scaled > activationFloor {
		activationFloor = scaled
	}
	if float64(community.NewBackers7d) < activationFloor {
		priorities = append(priorities, entities.Priority{
			Severity:    entities.SeverityInfo,
			Title:       "New backer activation",
			Description: "New backer acquisition is slowing. Publish a campaign update or push outreach to restart discovery.",
		})
	}

	if len(priorities) == 0 {
		priorities = append(priorities, entities.Priority{
			Severity:    entities.SeveritySuccess,
			Title:       "Metrics stable",
			Description: "Funding pace, reward inventory, and community growth are all on track.",
		})
	}
	return priorities
}

// BuildSummaryMetrics assembles the four headline cards in fixed order:
// weekly cash, projection, gap to goal, velocity.
func BuildSummaryMetrics(velocity entities.VelocityMetrics, weekly entities.WeeklyCash) []entities.SummaryMetric {
	weeklyTone := entities.ToneNeutral
	weeklyCaption := "pledged in the last 7 days"
	if weekly.HasPriorData {
		weeklyTone = entities.ToneWarning
		if weekly.TrailingTotal >= weekly.PriorTotal {
			weeklyTone = entities.TonePositive
		}
		if weekly.PriorTotal > 0 {
			weeklyCaption = FormatPercentChange(weekly.TrailingTotal, weekly.PriorTotal) + " vs prior 7 days"
		}
	}

	projectionTone := entities.ToneWarning
	if velocity.RunwayCoveragePercent >= 100 {
		projectionTone = entities.TonePositive
	}

	gapMetric := entities.SummaryMetric{
		Key:     "gap",
		Label:   "Gap to goal",
		Value:   FormatAmount(velocity.GapToGoal),
		Caption: "remaining to reach the goal",
		Tone:    entities.ToneNeutral,
	}
	if velocity.GapToGoal <= 0 {
		gapMetric.Value = "Goal reached"
		gapMetric.Caption = "target fully funded"
		gapMetric.Tone = entities.TonePositive
	}

	velocityTone := entities.ToneWarning
	if velocity.RequiredDaily == 0 || velocity.AvgDaily >= velocity.RequiredDaily {
		velocityTone = entities.TonePositive
	}
	velocityCaption := ""
	if velocity.RequiredDaily > 0 {
		velocityCaption = "needs " + FormatAmount(velocity.RequiredDaily) + " / day"
	}

	return []entities.SummaryMetric{
		{
			Key:     "weekly-cash",
			Label:   "Weekly cash",
			Value:   FormatAmount(weekly.TrailingTotal),
			Caption: weeklyCaption,
			Tone:    weeklyTone,
		},
		{
			Key:     "projection",
			Label:   "Projected total",
			Value:   FormatAmount(velocity.ProjectedAmount),
			Caption: fmt.Sprintf("%.0f%% of goal at current pace", velocity.RunwayCoveragePercent),
			Tone:    projectionTone,
		},
		gapMetric,
		{
			Key:     "velocity",
			Label:   "Daily velocity",
			Value:   FormatAmount(velocity.AvgDaily) + " / day",
			Caption: velocityCaption,
			Tone:    velocityTone,
		},
	}
}
