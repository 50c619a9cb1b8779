package smsglobal

import (
	"context"

	"github.com/qdm12/smsglobal/internal/soap"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Caller,Dialer,Logger

// Caller invokes a remote procedure and returns its raw XML payload.
type Caller interface {
	Call(ctx context.Context, procedure string, params soap.Params) (payload string, err error)
}

// Dialer creates a Caller bound to the service described at wsdlURL.
type Dialer interface {
	Dial(ctx context.Context, wsdlURL string) (caller Caller, err error)
}

type Logger interface {
	Debug(s string)
	Warn(s string)
}
