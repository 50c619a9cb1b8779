package smsglobal

import (
	"context"

	"github.com/qdm12/smsglobal/internal/soap"
)

type SMS struct {
	From    string
	To      string
	Content string
	// Schedule is the date time to send the message at, in the format
	// expected by the gateway. It is sent as 0 when left empty, meaning
	// the message is sent right away.
	Schedule string
}

// SendSMS sends the message through the apiSendSms remote procedure.
func (c *Client) SendSMS(ctx context.Context, sms SMS) (response Response, err error) {
	result, err := c.Invoke(ctx, ProcedureSendSMS, c.sendSMSParams(sms))
	return result.Response, err
}

// sendSMSParams returns the apiSendSms parameters. The gateway rejects
// parameters out of this order, and unset fields must be present as nil.
func (c *Client) sendSMSParams(sms SMS) soap.Params {
	var schedule any = 0
	if sms.Schedule != "" {
		schedule = sms.Schedule
	}

	return soap.Params{
		{Name: "ticket", Value: optional(c.ticketID)},
		{Name: "sms_from", Value: optional(sms.From)},
		{Name: "sms_to", Value: optional(sms.To)},
		{Name: "msg_content", Value: optional(sms.Content)},
		{Name: "msg_type", Value: "text"},
		{Name: "unicode", Value: 0},
		{Name: "schedule", Value: schedule},
	}
}

func smsFromParams(params soap.Params) (sms SMS) {
	sms.From, _ = stringParam(params, "sms_from")
	sms.To, _ = stringParam(params, "sms_to")
	sms.Content, _ = stringParam(params, "msg_content")
	sms.Schedule, _ = stringParam(params, "schedule")
	if sms.Schedule == "0" {
		sms.Schedule = ""
	}
	return sms
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
