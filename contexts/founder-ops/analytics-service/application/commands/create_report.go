package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"founderops/contexts/founder-ops/analytics-service/application"
	domainerrors "founderops/contexts/founder-ops/analytics-service/domain/errors"
	"founderops/contexts/founder-ops/analytics-service/ports"
)

const reportCreatedEventType = "founderops.report.created"

type CreateReportCommand struct {
	CampaignID  string
	RequestedBy string
}

// CreateReportUseCase freezes the current founder-ops metrics into a
// persisted snapshot and announces it through the outbox.
type CreateReportUseCase struct {
	Analytics      application.Service
	Reports        ports.ReportRepository
	Outbox         ports.OutboxWriter
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

type CreateReportResult struct {
	Report   ports.ReportSnapshot
	Replayed bool
}

type reportCreatedPayload struct {
	ReportID    string    `json:"report_id"`
	CampaignID  string    `json:"campaign_id"`
	RequestedBy string    `json:"requested_by"`
	GeneratedAt time.Time `json:"generated_at"`
}

func (uc CreateReportUseCase) Execute(
	ctx context.Context,
	idempotencyKey string,
	cmd CreateReportCommand,
) (CreateReportResult, error) {
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	cmd.CampaignID = strings.TrimSpace(cmd.CampaignID)
	cmd.RequestedBy = strings.TrimSpace(cmd.RequestedBy)
	if idempotencyKey == "" {
		return CreateReportResult{}, domainerrors.ErrIdempotencyKeyRequired
	}
	if cmd.CampaignID == "" || cmd.RequestedBy == "" {
		return CreateReportResult{}, domainerrors.ErrInvalidRequest
	}

	now := uc.now()
	requestHash := hashStrings("founder_ops_create_report", cmd.CampaignID, cmd.RequestedBy)

	record, found, err := uc.Idempotency.Get(ctx, idempotencyKey, now)
	if err != nil {
		return CreateReportResult{}, err
	}
	if found {
		if record.RequestHash != requestHash {
			return CreateReportResult{}, domainerrors.ErrIdempotencyConflict
		}
		var replay ports.ReportSnapshot
		if err := json.Unmarshal(record.Payload, &replay); err != nil {
			return CreateReportResult{}, err
		}
		return CreateReportResult{Report: replay, Replayed: true}, nil
	}

	metrics, err := uc.Analytics.GetFounderOps(ctx, cmd.CampaignID)
	if err != nil {
		return CreateReportResult{}, err
	}

	reportID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return CreateReportResult{}, err
	}
	report := ports.ReportSnapshot{
		ReportID:    reportID,
		CampaignID:  cmd.CampaignID,
		GeneratedAt: now,
		Metrics:     metrics,
	}
	if err := uc.Reports.CreateReport(ctx, report); err != nil {
		return CreateReportResult{}, err
	}

	if uc.Outbox != nil {
		if err := uc.appendReportCreated(ctx, report, cmd.RequestedBy, now); err != nil {
			return CreateReportResult{}, err
		}
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return CreateReportResult{}, err
	}
	if err := uc.Idempotency.Put(ctx, ports.IdempotencyRecord{
		Key:         idempotencyKey,
		RequestHash: requestHash,
		Payload:     payload,
		ExpiresAt:   now.Add(uc.idempotencyTTL()),
	}); err != nil {
		return CreateReportResult{}, err
	}

	application.ResolveLogger(uc.Logger).Info("founder ops report created",
		"event", "founder_ops_report_created",
		"module", "founder-ops/analytics-service",
		"layer", "application",
		"campaign_id", cmd.CampaignID,
		"report_id", reportID,
	)
	return CreateReportResult{Report: report}, nil
}

func (uc CreateReportUseCase) appendReportCreated(
	ctx context.Context,
	report ports.ReportSnapshot,
	requestedBy string,
	now time.Time,
) error {
	eventID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return err
	}
	data, err := json.Marshal(reportCreatedPayload{
		ReportID:    report.ReportID,
		CampaignID:  report.CampaignID,
		RequestedBy: requestedBy,
		GeneratedAt: report.GeneratedAt,
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:          eventID,
		EventType:        reportCreatedEventType,
		OccurredAt:       now,
		SourceService:    "founder-ops/analytics-service",
		SchemaVersion:    1,
		PartitionKeyPath: "campaign_id",
		PartitionKey:     report.CampaignID,
		Data:             data,
	})
}

func (uc CreateReportUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func (uc CreateReportUseCase) idempotencyTTL() time.Duration {
	if uc.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return uc.IdempotencyTTL
}

func hashStrings(values ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(values, "|")))
	return hex.EncodeToString(sum[:])
}
