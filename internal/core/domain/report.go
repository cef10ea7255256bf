package domain

import "time"

// WorkflowStatusComplete is reported whenever the orchestrator reaches
// synthesis, even if one or both pipelines degraded to an error outcome.
const WorkflowStatusComplete = "complete"

// SignalDiscovery is the raw discovery result from the signals agent.
type SignalDiscovery struct {
	Message string   `json:"message"`
	Signals []Signal `json:"signals"`
}

// SignalsOutcome is the Signal Pipeline's fragment of the report. Either
// Discovery (plus zero or more Activations) or Error is set.
type SignalsOutcome struct {
	Discovery   *SignalDiscovery   `json:"discovery,omitempty"`
	Activations []SignalActivation `json:"activations,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// SignalsFound returns the number of discovered signals.
func (o SignalsOutcome) SignalsFound() int {
	if o.Discovery == nil {
		return 0
	}
	return len(o.Discovery.Signals)
}

// SalesOutcome is the Product/MediaBuy Pipeline's fragment of the report.
// A failed media-buy creation sets Error while keeping the already
// discovered Products.
type SalesOutcome struct {
	Products []Product `json:"products,omitempty"`
	MediaBuy *MediaBuy `json:"media_buy,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// CampaignMetadata echoes the request identity into the report.
type CampaignMetadata struct {
	Advertiser   string    `json:"advertiser"`
	CampaignName string    `json:"campaign_name"`
	GeneratedAt  time.Time `json:"generated_at"`
	BriefSummary string    `json:"brief_summary"`
}

// WorkflowSummary holds the counts derived from both pipeline outcomes.
type WorkflowSummary struct {
	SignalsFound     int    `json:"signals_found"`
	SignalsActivated int    `json:"signals_activated"`
	ProductsFound    int    `json:"products_found"`
	MediaBuyCreated  bool   `json:"media_buy_created"`
	Status           string `json:"workflow_status"`
}

// FinalResults is the human-facing closing section of the report.
type FinalResults struct {
	CampaignReady     bool     `json:"campaign_ready"`
	SignalsAvailable  int      `json:"signals_available"`
	ProductsAvailable int      `json:"products_available"`
	BudgetAllocation  float64  `json:"budget_allocation"`
	FlightDates       string   `json:"flight_dates"`
	TargetingSummary  string   `json:"targeting_summary"`
	Recommendations   []string `json:"recommendations"`
}

// WorkflowReport is the orchestrator's output: request metadata, both
// pipeline outcomes, derived counts and the final recommendations. It is
// assembled once and never mutated after being returned.
type WorkflowReport struct {
	Metadata CampaignMetadata `json:"campaign_metadata"`
	Signals  SignalsOutcome   `json:"signals_agent"`
	Sales    SalesOutcome     `json:"sales_agent"`
	Workflow WorkflowSummary  `json:"combined_workflow"`
	Final    FinalResults     `json:"final_results"`
}
