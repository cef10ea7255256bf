package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tescoboy/sales-agent2/internal/core/domain"
	"github.com/tescoboy/sales-agent2/internal/core/port"
)

func assertKind(t *testing.T, err error, kind port.ErrorKind) {
	t.Helper()
	var agentErr *port.AgentError
	if !errors.As(err, &agentErr) {
		t.Fatalf("expected AgentError, got %v", err)
	}
	if agentErr.Kind != kind {
		t.Fatalf("error kind: got %q, want %q (err: %v)", agentErr.Kind, kind, err)
	}
}

func TestCallToolSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mcp/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var env struct {
			JSONRPC string `json:"jsonrpc"`
			Method  string `json:"method"`
			Params  struct {
				Name      string          `json:"name"`
				Arguments json.RawMessage `json:"arguments"`
			} `json:"params"`
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			t.Errorf("decode envelope: %v", err)
		}
		if env.JSONRPC != "2.0" || env.Method != "tools/call" {
			t.Errorf("unexpected envelope: %+v", env)
		}
		if env.Params.Name != "get_signals" {
			t.Errorf("unexpected tool name %q", env.Params.Name)
		}
		if env.ID == "" {
			t.Errorf("missing correlation id")
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","result":{"message":"ok","signals":[]},"id":"1"}`))
	}))
	defer srv.Close()

	c := NewClient("signals", srv.URL, time.Second, time.Second, nil, RetryPolicy{})
	var out port.GetSignalsResponse
	if err := c.CallTool(context.Background(), "get_signals", map[string]any{"signal_spec": "x"}, &out); err != nil {
		t.Fatalf("CallTool error: %v", err)
	}
	if out.Message != "ok" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestCallToolNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("signals", srv.URL, time.Second, time.Second, nil, RetryPolicy{})
	err := c.CallTool(context.Background(), "get_signals", nil, nil)
	assertKind(t, err, port.ErrorKindService)
}

func TestCallToolRPCErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32000,"message":"segment not found"},"id":"1"}`))
	}))
	defer srv.Close()

	c := NewClient("signals", srv.URL, time.Second, time.Second, nil, RetryPolicy{})
	err := c.CallTool(context.Background(), "activate_signal", nil, nil)
	assertKind(t, err, port.ErrorKindService)
}

func TestCallToolMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	c := NewClient("signals", srv.URL, time.Second, time.Second, nil, RetryPolicy{})
	err := c.CallTool(context.Background(), "get_signals", nil, nil)
	assertKind(t, err, port.ErrorKindTransport)
}

func TestCallToolConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient("signals", srv.URL, time.Second, time.Second, nil, RetryPolicy{})
	err := c.CallTool(context.Background(), "get_signals", nil, nil)
	assertKind(t, err, port.ErrorKindTransport)
}

func TestCallToolTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient("signals", srv.URL, 20*time.Millisecond, time.Second, nil, RetryPolicy{})
	err := c.CallTool(context.Background(), "get_signals", nil, nil)
	assertKind(t, err, port.ErrorKindTransport)
}

func TestProbeStates(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer healthy.Close()

	unhealthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer unhealthy.Close()

	unavailable := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unavailable.Close()

	cases := []struct {
		name string
		url  string
		want port.HealthState
	}{
		{"healthy", healthy.URL, port.HealthHealthy},
		{"unhealthy", unhealthy.URL, port.HealthUnhealthy},
		{"unavailable", unavailable.URL, port.HealthUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClient("signals", tc.url, time.Second, time.Second, nil, RetryPolicy{})
			if got := c.Probe(context.Background()); got != tc.want {
				t.Fatalf("Probe = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRetryPolicyTransportRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`garbage`)) // classified as transport failure
	}))
	defer srv.Close()

	retry := RetryPolicy{MaxAttempts: 3}
	c := NewClient("signals", srv.URL, time.Second, time.Second, nil, retry)
	err := c.CallTool(context.Background(), "get_signals", nil, nil)
	assertKind(t, err, port.ErrorKindTransport)
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestRetryPolicySkipsServiceErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no", http.StatusBadRequest)
	}))
	defer srv.Close()

	retry := RetryPolicy{MaxAttempts: 3}
	c := NewClient("signals", srv.URL, time.Second, time.Second, nil, retry)
	err := c.CallTool(context.Background(), "get_signals", nil, nil)
	assertKind(t, err, port.ErrorKindService)
	if got := calls.Load(); got != 1 {
		t.Fatalf("service errors are not retryable by default, got %d attempts", got)
	}
}

func TestSalesClientWrapsArgsAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-adcp-auth"); got != "tok" {
			t.Errorf("auth header: got %q", got)
		}
		if got := r.Header.Get("x-adcp-tenant"); got != "acme" {
			t.Errorf("tenant header: got %q", got)
		}
		var env struct {
			Params struct {
				Name      string `json:"name"`
				Arguments struct {
					Req struct {
						Brief string `json:"brief"`
					} `json:"req"`
				} `json:"arguments"`
			} `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			t.Errorf("decode envelope: %v", err)
		}
		if env.Params.Name != "get_products" || env.Params.Arguments.Req.Brief != "premium video" {
			t.Errorf("unexpected tool call: %+v", env.Params)
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","result":{"products":[` +
			`{"product_id":"p1","name":"Homepage","delivery_type":"guaranteed","cpm":25.0},` +
			`{"product_id":"p2","name":"Run of Site","delivery_type":"non_guaranteed","price_guidance":{"floor":2.0,"p50":4.5,"p90":9.0}}` +
			`]},"id":"1"}`))
	}))
	defer srv.Close()

	c := NewSalesClient(srv.URL, "tok", "acme", time.Second, time.Second, RetryPolicy{})
	resp, err := c.GetProducts(context.Background(), port.GetProductsRequest{Brief: "premium video", PromotedOffering: "brand"})
	if err != nil {
		t.Fatalf("GetProducts error: %v", err)
	}
	if len(resp.Products) != 2 || resp.Products[0].ProductID != "p1" {
		t.Fatalf("unexpected products: %+v", resp.Products)
	}
	if resp.Products[0].CPM == nil || *resp.Products[0].CPM != 25.0 {
		t.Fatalf("unexpected cpm: %+v", resp.Products[0].CPM)
	}
	nonGuaranteed := resp.Products[1]
	if nonGuaranteed.DeliveryType != domain.DeliveryNonGuaranteed || nonGuaranteed.CPM != nil {
		t.Fatalf("unexpected non-guaranteed product: %+v", nonGuaranteed)
	}
	pg := nonGuaranteed.PriceGuidance
	if pg == nil || pg.Floor != 2.0 || pg.P50 != 4.5 || pg.P90 != 9.0 {
		t.Fatalf("unexpected price guidance: %+v", pg)
	}
}

func TestSignalsClientAgentCard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agent-card" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"name":"Signals Activation Agent","description":"audience signals","version":"1.0.0","protocols":["a2a"]}`))
	}))
	defer srv.Close()

	c := NewSignalsClient(srv.URL, time.Second, time.Second, RetryPolicy{})
	card, err := c.AgentCard(context.Background())
	if err != nil {
		t.Fatalf("AgentCard error: %v", err)
	}
	if card.Name != "Signals Activation Agent" || card.Version != "1.0.0" {
		t.Fatalf("unexpected card: %+v", card)
	}
}
