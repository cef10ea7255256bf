package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tescoboy/sales-agent2/internal/core/domain"
)

// handleGenerateCampaign runs the campaign workflow. The request body is
// decoded into a domain.CampaignRequest. Parsing errors and validation
// failures produce HTTP 400 with an error message; unexpected internal
// faults are logged and produce HTTP 500 with a generic message. Pipeline
// failures never fail the request: they are embedded in the returned
// report.
func (h *Handler) handleGenerateCampaign(w http.ResponseWriter, r *http.Request) {
	var req domain.CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	report, err := h.svc.GenerateCampaign(r.Context(), req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: vErr.Error()})
			return
		}
		h.logger.Error("generate campaign error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
