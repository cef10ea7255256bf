package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tescoboy/sales-agent2/internal/core/domain"
	"github.com/tescoboy/sales-agent2/internal/core/port"
)

// Recommendation lines appended to the report. The first three are
// conditional on pipeline outcomes; the closing line is always present.
const (
	recSignals = "Signals discovered and activated for target audience"
	recProduct = "Premium inventory identified for campaign objectives"
	recBudget  = "Campaign created successfully with allocated budget"
	recClosing = "Ready for campaign execution"
)

// Options bound the workflow's fan-out and targeting scope. Zero values fall
// back to the defaults baked into the pipelines.
type Options struct {
	// ActivationFanout caps signal activations per run (default 2).
	ActivationFanout int
	// ProductFanout caps products per media buy (default 3).
	ProductFanout int
	// Countries scopes discovery and the targeting overlay (default US).
	Countries []string
}

// CampaignUseCase orchestrates the signal and sales pipelines into one
// WorkflowReport. Pipelines run concurrently; neither result gates the
// other, and a failed pipeline degrades the report instead of failing the
// request.
type CampaignUseCase struct {
	signals   *SignalPipeline
	sales     *SalesPipeline
	signalsAg port.SignalsAgent
	salesAg   port.SalesAgent
	countries []string
	logger    *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase wires both agents into a workflow orchestrator.
func NewCampaignUseCase(signals port.SignalsAgent, sales port.SalesAgent, opts Options, logger *slog.Logger) *CampaignUseCase {
	countries := opts.Countries
	if len(countries) == 0 {
		countries = []string{"US"}
	}
	return &CampaignUseCase{
		signals:   NewSignalPipeline(signals, logger, opts.ActivationFanout, countries),
		sales:     NewSalesPipeline(sales, logger, opts.ProductFanout),
		signalsAg: signals,
		salesAg:   sales,
		countries: countries,
		logger:    logger,
	}
}

// GenerateCampaign validates the request, runs both pipelines concurrently
// and synthesizes the report. Only a *domain.ValidationError is returned as
// an error; every remote failure is embedded in the report.
func (u *CampaignUseCase) GenerateCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.WorkflowReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u.logger.Info("generating campaign",
		slog.String("advertiser", req.AdvertiserName),
		slog.String("campaign", req.CampaignName))

	overlay := deriveOverlay(req.CampaignBrief, u.countries)

	var (
		wg      sync.WaitGroup
		signals domain.SignalsOutcome
		sales   domain.SalesOutcome
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		signals = u.signals.Run(ctx, req)
	}()
	go func() {
		defer wg.Done()
		sales = u.sales.Run(ctx, req, overlay)
	}()
	wg.Wait()

	report := u.assemble(req, signals, sales)
	u.logger.Info("campaign workflow complete",
		slog.Int("signals_found", report.Workflow.SignalsFound),
		slog.Int("products_found", report.Workflow.ProductsFound),
		slog.Bool("media_buy_created", report.Workflow.MediaBuyCreated))
	return report, nil
}

func (u *CampaignUseCase) assemble(req domain.CampaignRequest, signals domain.SignalsOutcome, sales domain.SalesOutcome) *domain.WorkflowReport {
	mediaBuyCreated := sales.MediaBuy != nil
	return &domain.WorkflowReport{
		Metadata: domain.CampaignMetadata{
			Advertiser:   req.AdvertiserName,
			CampaignName: req.CampaignName,
			GeneratedAt:  time.Now().UTC(),
			BriefSummary: req.CampaignBrief,
		},
		Signals: signals,
		Sales:   sales,
		Workflow: domain.WorkflowSummary{
			SignalsFound:     signals.SignalsFound(),
			SignalsActivated: len(signals.Activations),
			ProductsFound:    len(sales.Products),
			MediaBuyCreated:  mediaBuyCreated,
			Status:           domain.WorkflowStatusComplete,
		},
		Final: domain.FinalResults{
			CampaignReady:     mediaBuyCreated,
			SignalsAvailable:  signals.SignalsFound(),
			ProductsAvailable: len(sales.Products),
			BudgetAllocation:  req.Budget,
			FlightDates:       req.FlightDates(),
			TargetingSummary:  targetingSummary(req.CampaignBrief),
			Recommendations:   recommendations(signals, sales),
		},
	}
}

// recommendations builds the ordered fixed-template list. The closing line
// is appended regardless of prior outcomes.
func recommendations(signals domain.SignalsOutcome, sales domain.SalesOutcome) []string {
	var recs []string
	if signals.SignalsFound() > 0 {
		recs = append(recs, recSignals)
	}
	if len(sales.Products) > 0 {
		recs = append(recs, recProduct)
	}
	if sales.MediaBuy != nil {
		recs = append(recs, recBudget)
	}
	return append(recs, recClosing)
}

// Health probes both agents concurrently. The aggregate never fails because
// a probe is unavailable; the orchestrator itself is always reported
// healthy once it can serve the request.
func (u *CampaignUseCase) Health(ctx context.Context) port.ServiceHealth {
	var (
		wg           sync.WaitGroup
		signalsState port.HealthState
		salesState   port.HealthState
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		signalsState = u.signalsAg.Health(ctx)
	}()
	go func() {
		defer wg.Done()
		salesState = u.salesAg.Health(ctx)
	}()
	wg.Wait()

	return port.ServiceHealth{
		Status:    string(port.HealthHealthy),
		Timestamp: time.Now().UTC(),
		Services: map[string]port.HealthState{
			"signals_agent": signalsState,
			"sales_agent":   salesState,
		},
	}
}

// SignalsAgentCard reads through to the signals agent's metadata card.
func (u *CampaignUseCase) SignalsAgentCard(ctx context.Context) (*port.AgentCard, error) {
	return u.signalsAg.AgentCard(ctx)
}
