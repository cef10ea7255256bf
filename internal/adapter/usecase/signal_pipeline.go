package usecase

import (
	"context"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/tescoboy/sales-agent2/internal/core/domain"
	"github.com/tescoboy/sales-agent2/internal/core/port"
)

const (
	// maxSignalSpecLen is the upstream limit on the discovery
	// specification string.
	maxSignalSpecLen = 200
	// defaultMaxResults caps how many signals discovery may return.
	defaultMaxResults = 5
	// defaultPlatform is the decisioning platform signals are activated on
	// unless overridden.
	defaultPlatform = "index-exchange"
)

// signalsUnavailableMsg marks the outcome when the health gate fails.
const signalsUnavailableMsg = "signals agent not available"

// SignalPipeline turns a campaign brief into a set of activated audience
// signals. Discovery is gated on the agent's health probe; activation fans
// out over at most fanout signals, each independently.
type SignalPipeline struct {
	agent      port.SignalsAgent
	logger     *slog.Logger
	fanout     int
	maxResults int
	platform   string
	countries  []string
}

// NewSignalPipeline creates a pipeline bound to one signals agent. A fanout
// below 1 falls back to 2.
func NewSignalPipeline(agent port.SignalsAgent, logger *slog.Logger, fanout int, countries []string) *SignalPipeline {
	if fanout < 1 {
		fanout = 2
	}
	if len(countries) == 0 {
		countries = []string{"US"}
	}
	return &SignalPipeline{
		agent:      agent,
		logger:     logger,
		fanout:     fanout,
		maxResults: defaultMaxResults,
		platform:   defaultPlatform,
		countries:  countries,
	}
}

// Run executes discovery then activation. It never returns an error: any
// failure is recorded in the outcome. Partial activation failure keeps the
// successful activations; discovery failure skips activation entirely.
func (p *SignalPipeline) Run(ctx context.Context, req domain.CampaignRequest) domain.SignalsOutcome {
	if state := p.agent.Health(ctx); state != port.HealthHealthy {
		p.logger.Warn("signals agent health gate failed", slog.String("state", string(state)))
		return domain.SignalsOutcome{Error: signalsUnavailableMsg}
	}

	discovery, err := p.agent.GetSignals(ctx, port.GetSignalsRequest{
		SignalSpec: truncate(req.CampaignBrief, maxSignalSpecLen),
		DeliverTo:  port.DeliverTo{Platforms: "all", Countries: p.countries},
		MaxResults: p.maxResults,
	})
	if err != nil {
		p.logger.Error("signal discovery failed", slog.Any("error", err))
		return domain.SignalsOutcome{Error: err.Error()}
	}

	outcome := domain.SignalsOutcome{
		Discovery: &domain.SignalDiscovery{
			Message: discovery.Message,
			Signals: discovery.Signals,
		},
	}
	outcome.Activations = p.activate(ctx, discovery.Signals)
	return outcome
}

// activate deploys the first fanout signals concurrently. Results keep
// discovery order; a failed activation is logged and dropped without
// affecting its siblings.
func (p *SignalPipeline) activate(ctx context.Context, signals []domain.Signal) []domain.SignalActivation {
	n := min(p.fanout, len(signals))
	if n == 0 {
		return nil
	}

	results := make([]*domain.SignalActivation, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int, sig domain.Signal) {
			defer wg.Done()
			resp, err := p.agent.ActivateSignal(ctx, port.ActivateSignalRequest{
				SegmentID: sig.SegmentID,
				Platform:  p.platform,
			})
			if err != nil {
				p.logger.Error("signal activation failed",
					slog.String("segment_id", sig.SegmentID),
					slog.Any("error", err))
				return
			}
			results[i] = &domain.SignalActivation{
				SignalID:          sig.SegmentID,
				SignalName:        sig.Name,
				Platform:          p.platform,
				Status:            resp.Status,
				PlatformSegmentID: resp.PlatformSegmentID,
				Message:           resp.Message,
			}
		}(i, signals[i])
	}
	wg.Wait()

	activations := make([]domain.SignalActivation, 0, n)
	for _, r := range results {
		if r != nil {
			activations = append(activations, *r)
		}
	}
	return activations
}

// truncate shortens s to at most limit characters, never splitting a
// multi-byte rune.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
