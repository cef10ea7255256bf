package domain

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for flight dates (e.g. "2025-01-15").
const dateLayout = "2006-01-02"

// CampaignRequest is the input for a single workflow run. Field names match
// the JSON body accepted by the generate-campaign endpoint. The request is
// immutable for the duration of the run.
type CampaignRequest struct {
	AdvertiserName string  `json:"advertiserName"`
	CampaignName   string  `json:"campaignName"`
	CampaignBrief  string  `json:"campaignBrief"`
	Budget         float64 `json:"budget"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
}

// ValidationError reports a malformed or incomplete CampaignRequest. The
// request is rejected before any remote call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid campaign request: field %q %s", e.Field, e.Reason)
}

// Validate checks that all six required fields are present, the budget is
// positive and the flight window is well ordered.
func (r CampaignRequest) Validate() error {
	if r.AdvertiserName == "" {
		return &ValidationError{Field: "advertiserName", Reason: "is required"}
	}
	if r.CampaignName == "" {
		return &ValidationError{Field: "campaignName", Reason: "is required"}
	}
	if r.CampaignBrief == "" {
		return &ValidationError{Field: "campaignBrief", Reason: "is required"}
	}
	if r.Budget <= 0 {
		return &ValidationError{Field: "budget", Reason: "must be greater than zero"}
	}
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return &ValidationError{Field: "startDate", Reason: "must be a date in YYYY-MM-DD format"}
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return &ValidationError{Field: "endDate", Reason: "must be a date in YYYY-MM-DD format"}
	}
	if end.Before(start) {
		return &ValidationError{Field: "endDate", Reason: "must not be before startDate"}
	}
	return nil
}

// FlightDates renders the flight window as a human readable range.
func (r CampaignRequest) FlightDates() string {
	return fmt.Sprintf("%s to %s", r.StartDate, r.EndDate)
}
