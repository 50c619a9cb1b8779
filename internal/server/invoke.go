package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/qdm12/smsglobal/internal/smsglobal"
	"github.com/qdm12/smsglobal/internal/soap"
)

type paramJSON struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type valueJSON struct {
	Value string `json:"value"`
}

func (h *handlers) invoke(w http.ResponseWriter, r *http.Request) {
	procedure := chi.URLParam(r, "procedure")

	var body []paramJSON
	if !decodeJSON(w, r, &body) {
		return
	}

	params, err := toParams(body)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.gatewayMutex.Lock()
	result, err := h.gateway.Invoke(r.Context(), procedure, params)
	h.gatewayMutex.Unlock()
	if err != nil {
		gatewayError(w, err)
		return
	}

	switch smsglobal.Operation(procedure) {
	case smsglobal.OperationGetTicketID, smsglobal.OperationGetError:
		writeJSON(w, http.StatusOK, valueJSON{Value: result.Value})
	default:
		writeJSON(w, http.StatusOK, result.Response.Map())
	}
}

// toParams converts JSON decoded parameters to SOAP parameters,
// keeping their order. Numbers must be integers.
func toParams(body []paramJSON) (params soap.Params, err error) {
	params = make(soap.Params, len(body))
	for i, param := range body {
		if param.Name == "" {
			return nil, fmt.Errorf("%w: at position %d", soap.ErrParamNameEmpty, i)
		}
		params[i].Name = param.Name

		switch value := param.Value.(type) {
		case nil, string:
			params[i].Value = value
		case float64:
			if value != math.Trunc(value) || value > math.MaxInt32 || value < math.MinInt32 {
				return nil, fmt.Errorf("%w: %s has non integer number %v",
					soap.ErrParamTypeNotSupport, param.Name, value)
			}
			params[i].Value = int(value)
		default:
			return nil, fmt.Errorf("%w: %s has value of type %T",
				soap.ErrParamTypeNotSupport, param.Name, value)
		}
	}
	return params, nil
}
