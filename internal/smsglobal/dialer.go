package smsglobal

import (
	"context"
	"net/http"

	"github.com/qdm12/smsglobal/internal/soap"
)

type soapDialer struct {
	dialer *soap.Dialer
}

// NewSOAPDialer returns a Dialer creating SOAP clients using the HTTP
// client given. HTTP exchanges are logged at the debug level if
// logger is not nil.
func NewSOAPDialer(client *http.Client, logger soap.DebugLogger) Dialer { //nolint:ireturn
	return &soapDialer{
		dialer: soap.NewDialer(client, logger),
	}
}

func (d *soapDialer) Dial(ctx context.Context, wsdlURL string) (caller Caller, err error) { //nolint:ireturn
	client, err := d.dialer.Dial(ctx, wsdlURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}
