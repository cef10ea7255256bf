package port

import "fmt"

// ErrorKind classifies a failed interaction with a remote agent.
type ErrorKind string

const (
	// ErrorKindUnavailable means the agent's health probe did not report
	// healthy, so the dependent pipeline short-circuited without calling it.
	ErrorKindUnavailable ErrorKind = "service_unavailable"
	// ErrorKindService means the agent responded but signalled failure
	// (non-2xx status or an error payload).
	ErrorKindService ErrorKind = "service_error"
	// ErrorKindTransport means the call never completed cleanly: connection
	// refused, timeout or a malformed response.
	ErrorKindTransport ErrorKind = "transport_failure"
)

// AgentError is returned by agent clients for any failed call. Pipelines
// record it in their outcome instead of propagating it; only the Kind
// matters for control flow.
type AgentError struct {
	Agent string // "signals" or "sales"
	Op    string // tool or probe name
	Kind  ErrorKind
	Err   error
}

func (e *AgentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s agent: %s: %s", e.Agent, e.Op, e.Kind)
	}
	return fmt.Sprintf("%s agent: %s: %s: %v", e.Agent, e.Op, e.Kind, e.Err)
}

func (e *AgentError) Unwrap() error { return e.Err }
