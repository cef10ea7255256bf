package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleHealth reports the aggregated health of this service and both
// remote agents. An unreachable agent degrades its entry to "unavailable"
// without failing the endpoint.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Health(r.Context()))
}

// handleSignalsCard reads the signals agent's metadata card through to the
// caller. A failed fetch maps to HTTP 502 since the fault lies upstream.
func (h *Handler) handleSignalsCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.svc.SignalsAgentCard(r.Context())
	if err != nil {
		h.logger.Error("agent card fetch error", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, errorBody{Error: "signals agent card unavailable"})
		return
	}
	h.writeJSON(w, http.StatusOK, card)
}
