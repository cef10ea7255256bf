package port

import (
	"context"

	"github.com/tescoboy/sales-agent2/internal/core/domain"
)

// PacingEven distributes spend evenly across the flight window.
const PacingEven = "even"

// GetProductsRequest are the arguments for the get_products tool.
type GetProductsRequest struct {
	Brief            string `json:"brief"`
	PromotedOffering string `json:"promoted_offering"`
}

// GetProductsResponse is the get_products tool result.
type GetProductsResponse struct {
	Products []domain.Product `json:"products"`
}

// CreateMediaBuyRequest are the arguments for the create_media_buy tool.
type CreateMediaBuyRequest struct {
	ProductIDs       []string                `json:"product_ids"`
	FlightStartDate  string                  `json:"flight_start_date"`
	FlightEndDate    string                  `json:"flight_end_date"`
	TotalBudget      float64                 `json:"total_budget"`
	TargetingOverlay domain.TargetingOverlay `json:"targeting_overlay"`
	PONumber         string                  `json:"po_number"`
	Pacing           string                  `json:"pacing"`
}

// SalesAgent is the outbound port for the remote sales service. All failed
// calls return an *AgentError. Implementations are stateless and safe for
// concurrent use.
type SalesAgent interface {
	// Health probes the agent's liveness path.
	Health(ctx context.Context) HealthState
	// GetProducts discovers inventory matching a campaign brief.
	GetProducts(ctx context.Context, req GetProductsRequest) (*GetProductsResponse, error)
	// CreateMediaBuy books a media buy against previously discovered
	// products.
	CreateMediaBuy(ctx context.Context, req CreateMediaBuyRequest) (*domain.MediaBuy, error)
}
