// Package rpc contains the outbound adapters for the two remote agents. Both
// speak a JSON-RPC shaped tool-call protocol over HTTP POST, plus plain GET
// paths for liveness and agent metadata.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tescoboy/sales-agent2/internal/core/port"
)

// toolCallMethod is the JSON-RPC method wrapping every tool invocation.
const toolCallMethod = "tools/call"

// envelope is the JSON-RPC request frame. ID carries a fresh correlation
// identifier per call.
type envelope struct {
	JSONRPC string     `json:"jsonrpc"`
	Method  string     `json:"method"`
	Params  toolParams `json:"params"`
	ID      string     `json:"id"`
}

type toolParams struct {
	Name      string `json:"name"`
	Arguments any    `json:"arguments"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Client posts JSON-RPC tool calls to one agent endpoint. It is stateless
// between calls and safe for concurrent reuse.
type Client struct {
	agent         string // error attribution, "signals" or "sales"
	baseURL       string
	headers       map[string]string
	retry         RetryPolicy
	healthTimeout time.Duration
	http          *http.Client
}

// NewClient creates a reusable client for one agent. The timeout applies to
// every tool call independently; healthTimeout bounds liveness probes.
func NewClient(agent, baseURL string, timeout, healthTimeout time.Duration, headers map[string]string, retry RetryPolicy) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if healthTimeout <= 0 {
		healthTimeout = 5 * time.Second
	}
	return &Client{
		agent:         agent,
		baseURL:       baseURL,
		headers:       headers,
		retry:         retry,
		healthTimeout: healthTimeout,
		http:          &http.Client{Timeout: timeout},
	}
}

// CallTool invokes a named tool and decodes its result into out. Failures
// are returned as *port.AgentError classified as either a service error or a
// transport failure. The retry policy re-dispatches retryable failures; the
// zero policy performs a single attempt.
func (c *Client) CallTool(ctx context.Context, tool string, args any, out any) error {
	attempts := c.retry.attempts()
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := c.retry.wait(ctx, attempt); err != nil {
				return c.transportErr(tool, err)
			}
		}
		lastErr = c.callOnce(ctx, tool, args, out)
		if lastErr == nil || !c.retry.shouldRetry(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) callOnce(ctx context.Context, tool string, args any, out any) error {
	body, err := json.Marshal(envelope{
		JSONRPC: "2.0",
		Method:  toolCallMethod,
		Params:  toolParams{Name: tool, Arguments: args},
		ID:      uuid.NewString(),
	})
	if err != nil {
		return c.transportErr(tool, fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/mcp/", bytes.NewReader(body))
	if err != nil {
		return c.transportErr(tool, fmt.Errorf("new request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportErr(tool, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.serviceErr(tool, fmt.Errorf("unexpected status %s", resp.Status))
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return c.transportErr(tool, fmt.Errorf("decode response: %w", err))
	}
	if rpcResp.Error != nil {
		return c.serviceErr(tool, rpcResp.Error)
	}
	if out == nil || rpcResp.Result == nil {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return c.transportErr(tool, fmt.Errorf("decode result: %w", err))
	}
	return nil
}

// Probe issues a GET against the agent's /health path. It never returns an
// error: a probe that cannot complete reports unavailable, one that
// completes with a non-success status reports unhealthy.
func (c *Client) Probe(ctx context.Context) port.HealthState {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return port.HealthUnavailable
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return port.HealthUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return port.HealthUnhealthy
	}
	return port.HealthHealthy
}

// get fetches a plain GET path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return c.transportErr(path, fmt.Errorf("new request: %w", err))
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportErr(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.serviceErr(path, fmt.Errorf("unexpected status %s", resp.Status))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.transportErr(path, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) serviceErr(op string, err error) error {
	return &port.AgentError{Agent: c.agent, Op: op, Kind: port.ErrorKindService, Err: err}
}

func (c *Client) transportErr(op string, err error) error {
	return &port.AgentError{Agent: c.agent, Op: op, Kind: port.ErrorKindTransport, Err: err}
}
