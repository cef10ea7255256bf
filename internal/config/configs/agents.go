package configs

import "time"

// Agents holds connection settings for the two remote agents and the
// workflow bounds applied when calling them. Credentials are passed through
// to the sales agent as-is; the service performs no authentication of its
// own.
type Agents struct {
	// SignalsURL is the base URL of the signals agent.
	SignalsURL string `env:"SIGNALS_URL" envDefault:"http://127.0.0.1:8000"`
	// SalesURL is the base URL of the sales agent.
	SalesURL string `env:"SALES_URL" envDefault:"http://127.0.0.1:8101"`
	// AuthToken is forwarded to the sales agent on every call.
	AuthToken string `env:"AUTH_TOKEN" envDefault:"purina_token"`
	// TenantID selects the sales agent tenant.
	TenantID string `env:"TENANT_ID" envDefault:"default"`

	// RequestTimeout bounds every individual tool call. A timeout is
	// classified as a transport failure and does not cancel sibling calls.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	// HealthTimeout bounds health probes, which should fail fast.
	HealthTimeout time.Duration `env:"HEALTH_TIMEOUT" envDefault:"5s"`

	// ActivationFanout caps how many discovered signals are activated.
	ActivationFanout int `env:"ACTIVATION_FANOUT" envDefault:"2"`
	// ProductFanout caps how many discovered products go into a media buy.
	ProductFanout int `env:"PRODUCT_FANOUT" envDefault:"3"`
}
