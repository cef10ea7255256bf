package port

import (
	"context"
	"time"

	"github.com/tescoboy/sales-agent2/internal/core/domain"
)

// ServiceHealth aggregates the health of this service and both remote
// agents. Status reflects the orchestrator itself; per-agent states are
// reported under Services keyed by "signals_agent" and "sales_agent".
type ServiceHealth struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Services  map[string]HealthState `json:"services"`
}

// CampaignUseCase defines the business operations exposed by the
// orchestrator. This interface is the primary port into the application
// domain. Mock implementations can be generated from it for testing.
type CampaignUseCase interface {
	// GenerateCampaign runs both pipelines for a validated request and
	// synthesizes a WorkflowReport. A *domain.ValidationError is returned
	// for malformed input before any remote call; pipeline failures are
	// embedded in the report, never returned as errors.
	GenerateCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.WorkflowReport, error)

	// Health probes both remote agents without failing when either is
	// unreachable.
	Health(ctx context.Context) ServiceHealth

	// SignalsAgentCard fetches the signals agent's self-description.
	SignalsAgentCard(ctx context.Context) (*AgentCard, error)
}
