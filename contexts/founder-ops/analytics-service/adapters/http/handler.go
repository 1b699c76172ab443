package httpadapter

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"founderops/contexts/founder-ops/analytics-service/application"
	"founderops/contexts/founder-ops/analytics-service/application/commands"
	"founderops/contexts/founder-ops/analytics-service/domain/entities"
	"founderops/contexts/founder-ops/analytics-service/ports"
	httptransport "founderops/contexts/founder-ops/analytics-service/transport/http"
)

type Handler struct {
	Service      application.Service
	CreateReport commands.CreateReportUseCase
	Logger       *slog.Logger
}

func (h Handler) FounderOpsHandler(ctx context.Context, campaignID string) (httptransport.FounderOpsResponse, error) {
	doc, err := h.Service.GetFounderOps(ctx, campaignID)
	if err != nil {
		return httptransport.FounderOpsResponse{}, err
	}
	return httptransport.FounderOpsResponse{
		Status:    "success",
		Data:      founderOpsDTO(doc),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h Handler) VelocityHandler(ctx context.Context, campaignID string) (httptransport.VelocityResponse, error) {
	velocity, err := h.Service.GetVelocity(ctx, campaignID)
	if err != nil {
		return httptransport.VelocityResponse{}, err
	}
	return httptransport.VelocityResponse{
		Status:    "success",
		Data:      velocityDTO(velocity),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h Handler) CommunityHandler(ctx context.Context, campaignID string) (httptransport.CommunityResponse, error) {
	community, err := h.Service.GetCommunity(ctx, campaignID)
	if err != nil {
		return httptransport.CommunityResponse{}, err
	}
	return httptransport.CommunityResponse{
		Status:    "success",
		Data:      communityDTO(community),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h Handler) FulfillmentHandler(ctx context.Context, campaignID string) (httptransport.FulfillmentResponse, error) {
	fulfillment, err := h.Service.GetFulfillment(ctx, campaignID)
	if err != nil {
		return httptransport.FulfillmentResponse{}, err
	}
	return httptransport.FulfillmentResponse{
		Status:    "success",
		Data:      fulfillmentDTO(fulfillment),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h Handler) CreateReportHandler(
	ctx context.Context,
	idempotencyKey string,
	userID string,
	campaignID string,
) (httptransport.CreateReportResponse, error) {
	result, err := h.CreateReport.Execute(ctx, idempotencyKey, commands.CreateReportCommand{
		CampaignID:  strings.TrimSpace(campaignID),
		RequestedBy: strings.TrimSpace(userID),
	})
	if err != nil {
		return httptransport.CreateReportResponse{}, err
	}
	return httptransport.CreateReportResponse{
		Status:    "success",
		Data:      reportDTO(result.Report),
		Replayed:  result.Replayed,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h Handler) ListReportsHandler(ctx context.Context, campaignID string, limitRaw string) (httptransport.ListReportsResponse, error) {
	limit := 0
	if parsed, err := strconv.Atoi(strings.TrimSpace(limitRaw)); err == nil {
		limit = parsed
	}
	reports, err := h.Service.ListReports(ctx, campaignID, limit)
	if err != nil {
		return httptransport.ListReportsResponse{}, err
	}
	resp := httptransport.ListReportsResponse{Status: "success", Timestamp: time.Now().UTC().Format(time.RFC3339)}
	resp.Data.TotalCount = len(reports)
	resp.Data.Items = make([]httptransport.ReportDTO, 0, len(reports))
	for _, report := range reports {
		resp.Data.Items = append(resp.Data.Items, reportDTO(report))
	}
	return resp, nil
}

func founderOpsDTO(doc entities.FounderOpsMetrics) httptransport.FounderOpsDTO {
	dto := httptransport.FounderOpsDTO{
		CampaignID:     doc.CampaignID,
		GeneratedAt:    doc.GeneratedAt.UTC().Format(time.RFC3339),
		Source:         string(doc.Source),
		SummaryMetrics: make([]httptransport.SummaryMetricDTO, 0, len(doc.SummaryMetrics)),
		Priorities:     make([]httptransport.PriorityDTO, 0, len(doc.Priorities)),
		Velocity:       velocityDTO(doc.Velocity),
		WeeklyCash: httptransport.WeeklyCashDTO{
			TrailingTotal: doc.WeeklyCash.TrailingTotal,
			PriorTotal:    doc.WeeklyCash.PriorTotal,
			HasPriorData:  doc.WeeklyCash.HasPriorData,
		},
		Community:   communityDTO(doc.Community),
		Fulfillment: fulfillmentDTO(doc.Fulfillment),
	}
	for _, metric := range doc.SummaryMetrics {
		dto.SummaryMetrics = append(dto.SummaryMetrics, httptransport.SummaryMetricDTO{
			Key:     metric.Key,
			Label:   metric.Label,
			Value:   metric.Value,
			Caption: metric.Caption,
			Tone:    string(metric.Tone),
		})
	}
	for _, priority := range doc.Priorities {
		dto.Priorities = append(dto.Priorities, httptransport.PriorityDTO{
			Title:       priority.Title,
			Description: priority.Description,
			Severity:    string(priority.Severity),
		})
	}
	if len(doc.Timeline) > 0 {
		dto.Timeline = make([]httptransport.TimelinePointDTO, 0, len(doc.Timeline))
		for _, point := range doc.Timeline {
			dto.Timeline = append(dto.Timeline, httptransport.TimelinePointDTO{
				Day:        point.Day,
				Amount:     point.Amount,
				Cumulative: point.Cumulative,
			})
		}
	}
	return dto
}

func velocityDTO(velocity entities.VelocityMetrics) httptransport.VelocityDTO {
	return httptransport.VelocityDTO{
		PledgedAmount:         velocity.PledgedAmount,
		DaysElapsed:           velocity.DaysElapsed,
		DaysLeft:              velocity.DaysLeft,
		AvgDaily:              velocity.AvgDaily,
		GapToGoal:             velocity.GapToGoal,
		RequiredDaily:         velocity.RequiredDaily,
		ProjectedAmount:       velocity.ProjectedAmount,
		RunwayCoveragePercent: velocity.RunwayCoveragePercent,
		ProgressPercent:       application.ClampRunwayPercent(velocity.RunwayCoveragePercent),
	}
}

func communityDTO(community entities.CommunityMetrics) httptransport.CommunityDTO {
	return httptransport.CommunityDTO{
		AvgTicket:          community.AvgTicket,
		RepeatRate:         community.RepeatRate,
		NewBackers7d:       community.NewBackers7d,
		HighValueShare:     community.HighValueShare,
		HighValueThreshold: community.HighValueThreshold,
		TotalPledges:       community.TotalPledges,
		UniqueBackers:      community.UniqueBackers,
	}
}

func fulfillmentDTO(fulfillment *entities.FulfillmentMetrics) *httptransport.FulfillmentDTO {
	if fulfillment == nil {
		return nil
	}
	return &httptransport.FulfillmentDTO{
		TotalCommittedValue: fulfillment.TotalCommittedValue,
		RewardStatuses:      rewardStatusDTOs(fulfillment.RewardStatuses),
		LowInventoryRewards: rewardStatusDTOs(fulfillment.LowInventoryRewards),
		TopRewardsByRevenue: rewardStatusDTOs(fulfillment.TopRewardsByRevenue),
	}
}

func rewardStatusDTOs(statuses []entities.RewardStatus) []httptransport.RewardStatusDTO {
	items := make([]httptransport.RewardStatusDTO, 0, len(statuses))
	for _, status := range statuses {
		items = append(items, httptransport.RewardStatusDTO{
			RewardID:       status.RewardID,
			Title:          status.Title,
			Claimed:        status.Claimed,
			TotalQuantity:  status.TotalQuantity,
			Remaining:      status.Remaining,
			RemainingRatio: status.RemainingRatio,
			Revenue:        status.Revenue,
		})
	}
	return items
}

func reportDTO(report ports.ReportSnapshot) httptransport.ReportDTO {
	return httptransport.ReportDTO{
		ReportID:    report.ReportID,
		CampaignID:  report.CampaignID,
		GeneratedAt: report.GeneratedAt.UTC().Format(time.RFC3339),
		Metrics:     founderOpsDTO(report.Metrics),
	}
}
