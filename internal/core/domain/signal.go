package domain

// Signal is a targetable audience segment returned by the signals agent.
// Signals are read-only after discovery. Optional numeric fields default to
// zero when the agent omits them.
type Signal struct {
	SegmentID          string        `json:"signals_agent_segment_id"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	CoveragePercentage float64       `json:"coverage_percentage"`
	Pricing            SignalPricing `json:"pricing"`
	SignalType         string        `json:"signal_type"`
	DataProvider       string        `json:"data_provider"`
	Deployments        []Deployment  `json:"deployments"`
}

// SignalPricing carries the CPM price attached to a signal.
type SignalPricing struct {
	CPM      float64 `json:"cpm"`
	Currency string  `json:"currency"`
}

// Deployment describes where a signal is (or can be) live on a decisioning
// platform.
type Deployment struct {
	Platform          string `json:"platform"`
	PlatformSegmentID string `json:"decisioning_platform_segment_id"`
	IsLive            bool   `json:"is_live"`
	Scope             string `json:"scope"`
}

// SignalActivation records the result of binding one discovered signal to a
// decisioning platform. One is created per activated signal and never
// mutated afterwards.
type SignalActivation struct {
	SignalID          string `json:"signal_id"`
	SignalName        string `json:"signal_name"`
	Platform          string `json:"platform"`
	Status            string `json:"status"`
	PlatformSegmentID string `json:"decisioning_platform_segment_id"`
	Message           string `json:"message"`
}
