package smsglobal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/qdm12/smsglobal/internal/soap"
)

// Operation is an operation name handled locally by Invoke
// instead of being sent to the remote service.
type Operation string

const (
	OperationGetTicketID  Operation = "getTicketId"
	OperationSendSMS      Operation = "sendSms"
	OperationCheckBalance Operation = "checkBalance"
	OperationGetError     Operation = "getError"
)

// Result is the result of Invoke. Value is set for the getTicketId and
// getError operations, Response is set for all other operations.
type Result struct {
	Response Response
	Value    string
}

// Invoke runs the operation given. The operations getTicketId, sendSms,
// checkBalance and getError are handled by their dedicated methods, with
// their parameters taken by name from params. Any other operation is sent
// as is to the remote service, unless the last error is set or there is
// no transport, in which case no remote call is made.
func (c *Client) Invoke(ctx context.Context, operation string,
	params soap.Params) (result Result, err error) {
	switch Operation(operation) {
	case OperationGetTicketID:
		return Result{Value: c.TicketID()}, nil
	case OperationGetError:
		return Result{Value: c.LastError()}, nil
	case OperationSendSMS:
		result.Response, err = c.SendSMS(ctx, smsFromParams(params))
		return result, err
	case OperationCheckBalance:
		isoCountry, _ := stringParam(params, "iso_country")
		result.Response, err = c.CheckBalance(ctx, isoCountry)
		return result, err
	}

	switch {
	case c.lastErr != nil:
		return result, fmt.Errorf("%w: %w", ErrGated, c.lastErr)
	case c.caller == nil:
		return result, fmt.Errorf("%w", ErrNoTransport)
	}

	response, err := c.call(ctx, operation, params)
	if err != nil {
		return result, err
	}

	if code := response.ErrorCode(); code != "" {
		c.lastErr = newError(ErrApplication, code, nil)
		return result, c.lastErr
	}

	result.Response = response
	return result, nil
}

func stringParam(params soap.Params, name string) (value string, ok bool) {
	raw, ok := params.Get(name)
	if !ok {
		return "", false
	}
	switch typed := raw.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	default:
		return "", false
	}
}
