package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/qdm12/smsglobal/internal/smsglobal"
)

type errJSONWrapper struct {
	Error string `json:"error"`
}

func httpError(w http.ResponseWriter, status int, errString string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if errString == "" {
		errString = http.StatusText(status)
	}
	body := errJSONWrapper{Error: errString}
	_ = json.NewEncoder(w).Encode(body)
}

// gatewayError writes the error returned by a gateway operation,
// with a conflict status if the operation was refused because of a
// previous error and a bad gateway status otherwise.
func gatewayError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, smsglobal.ErrGated) || errors.Is(err, smsglobal.ErrNoTransport) {
		status = http.StatusConflict
	}
	httpError(w, status, err.Error())
}
