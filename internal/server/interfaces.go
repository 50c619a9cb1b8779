package server

import (
	"context"

	"github.com/qdm12/smsglobal/internal/smsglobal"
	"github.com/qdm12/smsglobal/internal/soap"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Gateway

type Gateway interface {
	TicketID() string
	LastError() string
	SetError(message string)
	SendSMS(ctx context.Context, sms smsglobal.SMS) (response smsglobal.Response, err error)
	CheckBalance(ctx context.Context, isoCountry string) (response smsglobal.Response, err error)
	Invoke(ctx context.Context, operation string, params soap.Params) (result smsglobal.Result, err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
