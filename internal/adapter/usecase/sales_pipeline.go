package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tescoboy/sales-agent2/internal/core/domain"
	"github.com/tescoboy/sales-agent2/internal/core/port"
)

// SalesPipeline turns a campaign brief into selected inventory and,
// conditionally, a booked media buy. Creation is only attempted when
// discovery returned at least one product.
type SalesPipeline struct {
	agent  port.SalesAgent
	logger *slog.Logger
	fanout int
}

// NewSalesPipeline creates a pipeline bound to one sales agent. A fanout
// below 1 falls back to 3.
func NewSalesPipeline(agent port.SalesAgent, logger *slog.Logger, fanout int) *SalesPipeline {
	if fanout < 1 {
		fanout = 3
	}
	return &SalesPipeline{agent: agent, logger: logger, fanout: fanout}
}

// Run executes product discovery and media-buy creation. It never returns
// an error: discovery failure yields an error outcome with creation
// skipped; creation failure keeps the already discovered product list.
func (p *SalesPipeline) Run(ctx context.Context, req domain.CampaignRequest, overlay domain.TargetingOverlay) domain.SalesOutcome {
	discovery, err := p.agent.GetProducts(ctx, port.GetProductsRequest{
		Brief:            req.CampaignBrief,
		PromotedOffering: promotedOffering(req),
	})
	if err != nil {
		p.logger.Error("product discovery failed", slog.Any("error", err))
		return domain.SalesOutcome{Error: err.Error()}
	}

	outcome := domain.SalesOutcome{Products: discovery.Products}
	if len(discovery.Products) == 0 {
		return outcome
	}

	n := min(p.fanout, len(discovery.Products))
	productIDs := make([]string, 0, n)
	for _, product := range discovery.Products[:n] {
		productIDs = append(productIDs, product.ProductID)
	}

	buy, err := p.agent.CreateMediaBuy(ctx, port.CreateMediaBuyRequest{
		ProductIDs:       productIDs,
		FlightStartDate:  req.StartDate,
		FlightEndDate:    req.EndDate,
		TotalBudget:      req.Budget,
		TargetingOverlay: overlay,
		PONumber:         poNumber(req),
		Pacing:           port.PacingEven,
	})
	if err != nil {
		p.logger.Error("media buy creation failed", slog.Any("error", err))
		outcome.Error = err.Error()
		return outcome
	}
	outcome.MediaBuy = buy
	return outcome
}

// promotedOffering derives the short marketing descriptor sent alongside the
// brief.
func promotedOffering(req domain.CampaignRequest) string {
	return fmt.Sprintf("%s campaign for %s", req.CampaignName, req.AdvertiserName)
}

// poNumber derives a purchase-order number from the advertiser and the
// flight start month, e.g. "PO-ACME-CORP-2025-01".
func poNumber(req domain.CampaignRequest) string {
	slug := strings.ToUpper(req.AdvertiserName)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	month := req.StartDate
	if len(month) >= 7 {
		month = month[:7]
	}
	return fmt.Sprintf("PO-%s-%s", strings.Trim(slug, "-"), month)
}
