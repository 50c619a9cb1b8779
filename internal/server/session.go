package server

import (
	"net/http"
)

type ticketJSON struct {
	Ticket string `json:"ticket"`
}

func (h *handlers) getTicket(w http.ResponseWriter, _ *http.Request) {
	h.gatewayMutex.Lock()
	ticket := h.gateway.TicketID()
	h.gatewayMutex.Unlock()
	writeJSON(w, http.StatusOK, ticketJSON{Ticket: ticket})
}

func (h *handlers) getError(w http.ResponseWriter, _ *http.Request) {
	h.gatewayMutex.Lock()
	lastError := h.gateway.LastError()
	h.gatewayMutex.Unlock()
	writeJSON(w, http.StatusOK, errJSONWrapper{Error: lastError})
}

func (h *handlers) clearError(w http.ResponseWriter, _ *http.Request) {
	h.gatewayMutex.Lock()
	h.gateway.SetError("")
	h.gatewayMutex.Unlock()
	h.logger.Info("gateway error cleared")
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) getHealth(w http.ResponseWriter, _ *http.Request) {
	h.gatewayMutex.Lock()
	lastError := h.gateway.LastError()
	h.gatewayMutex.Unlock()
	if lastError != "" {
		httpError(w, http.StatusServiceUnavailable, lastError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
