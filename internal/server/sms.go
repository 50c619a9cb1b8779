package server

import (
	"net/http"

	"github.com/qdm12/smsglobal/internal/smsglobal"
)

type smsJSON struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Content  string `json:"content"`
	Schedule string `json:"schedule"`
}

func (h *handlers) sendSMS(w http.ResponseWriter, r *http.Request) {
	var body smsJSON
	if !decodeJSON(w, r, &body) {
		return
	}

	if body.To == "" {
		httpError(w, http.StatusBadRequest, "destination number is empty")
		return
	}

	sms := smsglobal.SMS{
		From:     body.From,
		To:       body.To,
		Content:  body.Content,
		Schedule: body.Schedule,
	}

	h.gatewayMutex.Lock()
	response, err := h.gateway.SendSMS(r.Context(), sms)
	h.gatewayMutex.Unlock()
	if err != nil {
		gatewayError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.Map())
}

func (h *handlers) checkBalance(w http.ResponseWriter, r *http.Request) {
	isoCountry := r.URL.Query().Get("iso_country")

	h.gatewayMutex.Lock()
	response, err := h.gateway.CheckBalance(r.Context(), isoCountry)
	h.gatewayMutex.Unlock()
	if err != nil {
		gatewayError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.Map())
}
