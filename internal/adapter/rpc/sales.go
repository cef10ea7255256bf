package rpc

import (
	"context"
	"time"

	"github.com/tescoboy/sales-agent2/internal/core/domain"
	"github.com/tescoboy/sales-agent2/internal/core/port"
)

// Sales agent auth headers, forwarded verbatim from configuration.
const (
	headerAuth   = "x-adcp-auth"
	headerTenant = "x-adcp-tenant"
)

// SalesClient talks to the remote sales agent. Unlike the signals agent, its
// tools take a single "req" object, so arguments are wrapped accordingly.
type SalesClient struct {
	rpc *Client
}

var _ port.SalesAgent = (*SalesClient)(nil)

// reqArgs wraps a tool request the way the sales agent expects it.
type reqArgs struct {
	Req any `json:"req"`
}

// NewSalesClient creates a client for the sales agent at baseURL. The token
// and tenant are attached to every call.
func NewSalesClient(baseURL, token, tenant string, timeout, healthTimeout time.Duration, retry RetryPolicy) *SalesClient {
	headers := map[string]string{
		headerAuth:   token,
		headerTenant: tenant,
	}
	return &SalesClient{
		rpc: NewClient("sales", baseURL, timeout, healthTimeout, headers, retry),
	}
}

// Health probes the agent's /health path.
func (s *SalesClient) Health(ctx context.Context) port.HealthState {
	return s.rpc.Probe(ctx)
}

// GetProducts discovers inventory matching the brief.
func (s *SalesClient) GetProducts(ctx context.Context, req port.GetProductsRequest) (*port.GetProductsResponse, error) {
	var resp port.GetProductsResponse
	if err := s.rpc.CallTool(ctx, "get_products", reqArgs{Req: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateMediaBuy books a media buy against the selected products.
func (s *SalesClient) CreateMediaBuy(ctx context.Context, req port.CreateMediaBuyRequest) (*domain.MediaBuy, error) {
	var buy domain.MediaBuy
	if err := s.rpc.CallTool(ctx, "create_media_buy", reqArgs{Req: req}, &buy); err != nil {
		return nil, err
	}
	return &buy, nil
}
