package port

import (
	"context"

	"github.com/tescoboy/sales-agent2/internal/core/domain"
)

// HealthState is the outcome of probing a remote agent's liveness path.
type HealthState string

const (
	// HealthHealthy means the probe completed with a success status.
	HealthHealthy HealthState = "healthy"
	// HealthUnhealthy means the probe completed with a non-success status.
	HealthUnhealthy HealthState = "unhealthy"
	// HealthUnavailable means the probe itself could not complete.
	HealthUnavailable HealthState = "unavailable"
)

// DeliverTo scopes a signal discovery to platforms and countries.
// Platforms is either a single platform identifier or the literal "all".
type DeliverTo struct {
	Platforms string   `json:"platforms"`
	Countries []string `json:"countries"`
}

// GetSignalsRequest are the arguments for the get_signals tool.
type GetSignalsRequest struct {
	SignalSpec string    `json:"signal_spec"`
	DeliverTo  DeliverTo `json:"deliver_to"`
	MaxResults int       `json:"max_results"`
}

// GetSignalsResponse is the get_signals tool result.
type GetSignalsResponse struct {
	Message string          `json:"message"`
	Signals []domain.Signal `json:"signals"`
}

// ActivateSignalRequest are the arguments for the activate_signal tool.
// Account is nullable on the wire; nil means the agent's default account.
type ActivateSignalRequest struct {
	SegmentID string  `json:"signals_agent_segment_id"`
	Platform  string  `json:"platform"`
	Account   *string `json:"account"`
}

// ActivateSignalResponse is the activate_signal tool result.
type ActivateSignalResponse struct {
	Status            string `json:"status"`
	PlatformSegmentID string `json:"decisioning_platform_segment_id"`
	Message           string `json:"message"`
}

// AgentCard is the discovery metadata a signals agent publishes about
// itself.
type AgentCard struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Version     string       `json:"version"`
	Protocols   []string     `json:"protocols,omitempty"`
	Skills      []AgentSkill `json:"skills,omitempty"`
}

// AgentSkill names one capability advertised on an agent card.
type AgentSkill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SignalsAgent is the outbound port for the remote signals service. All
// failed calls return an *AgentError. Implementations are stateless and safe
// for concurrent use.
type SignalsAgent interface {
	// Health probes the agent's liveness path.
	Health(ctx context.Context) HealthState
	// AgentCard fetches the agent's self-description metadata.
	AgentCard(ctx context.Context) (*AgentCard, error)
	// GetSignals discovers audience signals for a free-text specification.
	GetSignals(ctx context.Context, req GetSignalsRequest) (*GetSignalsResponse, error)
	// ActivateSignal deploys a discovered signal on a decisioning platform.
	ActivateSignal(ctx context.Context, req ActivateSignalRequest) (*ActivateSignalResponse, error)
}
