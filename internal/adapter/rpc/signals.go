package rpc

import (
	"context"
	"time"

	"github.com/tescoboy/sales-agent2/internal/core/port"
)

// SignalsClient talks to the remote signals agent. Tool arguments are passed
// flat, the way the agent's JSON-RPC surface expects them.
type SignalsClient struct {
	rpc *Client
}

var _ port.SignalsAgent = (*SignalsClient)(nil)

// NewSignalsClient creates a client for the signals agent at baseURL.
func NewSignalsClient(baseURL string, timeout, healthTimeout time.Duration, retry RetryPolicy) *SignalsClient {
	return &SignalsClient{
		rpc: NewClient("signals", baseURL, timeout, healthTimeout, nil, retry),
	}
}

// Health probes the agent's /health path.
func (s *SignalsClient) Health(ctx context.Context) port.HealthState {
	return s.rpc.Probe(ctx)
}

// AgentCard fetches the agent's /agent-card metadata.
func (s *SignalsClient) AgentCard(ctx context.Context) (*port.AgentCard, error) {
	var card port.AgentCard
	if err := s.rpc.get(ctx, "/agent-card", &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// GetSignals discovers audience signals matching the specification.
func (s *SignalsClient) GetSignals(ctx context.Context, req port.GetSignalsRequest) (*port.GetSignalsResponse, error) {
	var resp port.GetSignalsResponse
	if err := s.rpc.CallTool(ctx, "get_signals", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ActivateSignal deploys a signal on a decisioning platform.
func (s *SignalsClient) ActivateSignal(ctx context.Context, req port.ActivateSignalRequest) (*port.ActivateSignalResponse, error) {
	var resp port.ActivateSignalResponse
	if err := s.rpc.CallTool(ctx, "activate_signal", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
