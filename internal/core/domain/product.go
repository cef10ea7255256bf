package domain

// Delivery types reported by the sales agent.
const (
	DeliveryGuaranteed    = "guaranteed"
	DeliveryNonGuaranteed = "non_guaranteed"
)

// Product is a piece of sellable inventory returned by the sales agent.
// Guaranteed products carry a flat CPM; non-guaranteed products carry price
// guidance instead. Both fields are optional on the wire, so they are
// pointers here.
type Product struct {
	ProductID     string         `json:"product_id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	DeliveryType  string         `json:"delivery_type"`
	CPM           *float64       `json:"cpm,omitempty"`
	PriceGuidance *PriceGuidance `json:"price_guidance,omitempty"`
	Formats       []Format       `json:"formats"`
}

// PriceGuidance is the floor/percentile CPM triple for non-guaranteed
// inventory.
type PriceGuidance struct {
	Floor float64 `json:"floor,omitempty"`
	P50   float64 `json:"p50,omitempty"`
	P90   float64 `json:"p90,omitempty"`
}

// Format describes a creative format supported by a product.
type Format struct {
	FormatID string `json:"format_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
}

// MediaBuy is a booked campaign commitment against one or more products.
// At most one is created per workflow run.
type MediaBuy struct {
	MediaBuyID      string   `json:"media_buy_id"`
	Status          string   `json:"status"`
	Message         string   `json:"message"`
	ProductIDs      []string `json:"product_ids"`
	TotalBudget     float64  `json:"total_budget"`
	FlightStartDate string   `json:"flight_start_date"`
	FlightEndDate   string   `json:"flight_end_date"`
}
