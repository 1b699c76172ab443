package analyticsservice

import (
	"log/slog"
	"time"

	httpadapter "founderops/contexts/founder-ops/analytics-service/adapters/http"
	"founderops/contexts/founder-ops/analytics-service/adapters/memory"
	"founderops/contexts/founder-ops/analytics-service/application"
	"founderops/contexts/founder-ops/analytics-service/application/commands"
	"founderops/contexts/founder-ops/analytics-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Snapshots          ports.SnapshotRepository
	Reports            ports.ReportRepository
	Precomputed        ports.PrecomputedProvider
	Idempotency        ports.IdempotencyStore
	Outbox             ports.OutboxWriter
	Clock              ports.Clock
	IDGenerator        ports.IDGenerator
	IdempotencyTTL     time.Duration
	HighValueThreshold float64
	Logger             *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Snapshots:          deps.Snapshots,
		Reports:            deps.Reports,
		Precomputed:        deps.Precomputed,
		Clock:              deps.Clock,
		HighValueThreshold: deps.HighValueThreshold,
		Logger:             deps.Logger,
	}
	createReport := commands.CreateReportUseCase{
		Analytics:      service,
		Reports:        deps.Reports,
		Outbox:         deps.Outbox,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			Service:      service,
			CreateReport: createReport,
			Logger:       deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Snapshots:          store,
		Reports:            store,
		Precomputed:        store,
		Idempotency:        store,
		Outbox:             store,
		Clock:              store,
		IDGenerator:        store,
		IdempotencyTTL:     7 * 24 * time.Hour,
		HighValueThreshold: application.DefaultHighValueThreshold,
		Logger:             logger,
	})
	module.Store = store
	return module
}
