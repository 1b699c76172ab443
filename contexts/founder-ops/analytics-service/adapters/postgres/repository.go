package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"founderops/contexts/founder-ops/analytics-service/domain/entities"
	domainerrors "founderops/contexts/founder-ops/analytics-service/domain/errors"
	"founderops/contexts/founder-ops/analytics-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type campaignModel struct {
	CampaignID    string     `gorm:"column:campaign_id;primaryKey"`
	Title         string     `gorm:"column:title"`
	GoalAmount    float64    `gorm:"column:goal_amount"`
	CurrentAmount *float64   `gorm:"column:current_amount"`
	StartDate     *time.Time `gorm:"column:start_date"`
	EndDate       *time.Time `gorm:"column:end_date"`
}

func (campaignModel) TableName() string { return "campaigns" }

type pledgeModel struct {
	PledgeID   string     `gorm:"column:pledge_id;primaryKey"`
	CampaignID string     `gorm:"column:campaign_id;index"`
	UserID     string     `gorm:"column:user_id"`
	Amount     float64    `gorm:"column:amount"`
	CreatedAt  *time.Time `gorm:"column:created_at"`
}

func (pledgeModel) TableName() string { return "pledges" }

type rewardModel struct {
	RewardID         string  `gorm:"column:reward_id;primaryKey"`
	CampaignID       string  `gorm:"column:campaign_id;index"`
	Title            string  `gorm:"column:title"`
	MinPledgedAmount float64 `gorm:"column:min_pledged_amount"`
	TotalQuantity    *int    `gorm:"column:total_quantity"`
	BackersCount     int     `gorm:"column:backers_count"`
	Position         int     `gorm:"column:position"`
}

func (rewardModel) TableName() string { return "rewards" }

type precomputedModel struct {
	CampaignID string    `gorm:"column:campaign_id;primaryKey"`
	Payload    []byte    `gorm:"column:payload"`
	ComputedAt time.Time `gorm:"column:computed_at"`
}

func (precomputedModel) TableName() string { return "founder_ops_precomputed" }

type reportModel struct {
	ReportID    string    `gorm:"column:report_id;primaryKey"`
	CampaignID  string    `gorm:"column:campaign_id;index"`
	GeneratedAt time.Time `gorm:"column:generated_at"`
	Metrics     []byte    `gorm:"column:metrics"`
}

func (reportModel) TableName() string { return "founder_ops_reports" }

type idempotencyModel struct {
	Key         string    `gorm:"column:idempotency_key;primaryKey"`
	RequestHash string    `gorm:"column:request_hash"`
	Payload     []byte    `gorm:"column:payload"`
	ExpiresAt   time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string { return "founder_ops_idempotency" }

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "founder_ops_outbox" }

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return entities.Campaign{
		CampaignID:    row.CampaignID,
		Title:         row.Title,
		GoalAmount:    row.GoalAmount,
		CurrentAmount: row.CurrentAmount,
		StartDate:     row.StartDate,
		EndDate:       row.EndDate,
	}, nil
}

func (r *Repository) ListPledges(ctx context.Context, campaignID string) ([]entities.Pledge, error) {
	var rows []pledgeModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("created_at ASC NULLS LAST").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Pledge, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.Pledge{
			PledgeID:  row.PledgeID,
			UserID:    row.UserID,
			Amount:    row.Amount,
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) ListRewards(ctx context.Context, campaignID string) ([]entities.Reward, error) {
	var rows []rewardModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("position ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Reward, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.Reward{
			RewardID:         row.RewardID,
			Title:            row.Title,
			MinPledgedAmount: row.MinPledgedAmount,
			TotalQuantity:    row.TotalQuantity,
			BackersCount:     row.BackersCount,
		})
	}
	return items, nil
}

func (r *Repository) GetPrecomputedFounderOps(ctx context.Context, campaignID string) (ports.PrecomputedFounderOps, bool, error) {
	var row precomputedModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PrecomputedFounderOps{}, false, nil
		}
		return ports.PrecomputedFounderOps{}, false, err
	}

	var doc ports.PrecomputedFounderOps
	if err := json.Unmarshal(row.Payload, &doc); err != nil {
		// A corrupt document is treated as absent so local computation
		// can serve; the row is left in place for operators to inspect.
		r.logger.Warn("precomputed founder ops payload is not decodable",
			"event", "founder_ops_precomputed_decode_failed",
			"module", "founder-ops/analytics-service",
			"layer", "adapter",
			"campaign_id", campaignID,
			"error", err.Error(),
		)
		return ports.PrecomputedFounderOps{}, false, nil
	}
	doc.ComputedAt = row.ComputedAt
	return doc, true, nil
}

func (r *Repository) CreateReport(ctx context.Context, report ports.ReportSnapshot) error {
	metrics, err := json.Marshal(report.Metrics)
	if err != nil {
		return err
	}
	row := reportModel{
		ReportID:    strings.TrimSpace(report.ReportID),
		CampaignID:  strings.TrimSpace(report.CampaignID),
		GeneratedAt: report.GeneratedAt.UTC(),
		Metrics:     metrics,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrIdempotencyConflict
		}
		return err
	}
	return nil
}

func (r *Repository) ListReports(ctx context.Context, campaignID string, limit int) ([]ports.ReportSnapshot, error) {
	tx := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("generated_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []reportModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]ports.ReportSnapshot, 0, len(rows))
	for _, row := range rows {
		var metrics entities.FounderOpsMetrics
		if err := json.Unmarshal(row.Metrics, &metrics); err != nil {
			return nil, err
		}
		items = append(items, ports.ReportSnapshot{
			ReportID:    row.ReportID,
			CampaignID:  row.CampaignID,
			GeneratedAt: row.GeneratedAt,
			Metrics:     metrics,
		})
	}
	return items, nil
}

func (r *Repository) Get(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("idempotency_key = ?", key).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}
	if !row.ExpiresAt.IsZero() && now.UTC().After(row.ExpiresAt.UTC()) {
		return ports.IdempotencyRecord{}, false, nil
	}
	return ports.IdempotencyRecord{
		Key:         row.Key,
		RequestHash: row.RequestHash,
		Payload:     row.Payload,
		ExpiresAt:   row.ExpiresAt,
	}, true, nil
}

func (r *Repository) Put(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:         record.Key,
		RequestHash: record.RequestHash,
		Payload:     record.Payload,
		ExpiresAt:   record.ExpiresAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrIdempotencyConflict
		}
		return err
	}
	return nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:     envelope.EventID,
		EventType:    envelope.EventType,
		PartitionKey: envelope.PartitionKey,
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	tx := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []outboxModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      row.Payload,
			CreatedAt:    row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	at := publishedAt.UTC()
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ? AND status = ?", outboxID, outboxStatusPending).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": &at,
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.SnapshotRepository = (*Repository)(nil)
var _ ports.PrecomputedProvider = (*Repository)(nil)
var _ ports.ReportRepository = (*Repository)(nil)
var _ ports.IdempotencyStore = (*Repository)(nil)
var _ ports.OutboxWriter = (*Repository)(nil)
var _ ports.OutboxRepository = (*Repository)(nil)
