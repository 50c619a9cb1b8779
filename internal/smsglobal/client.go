package smsglobal

import (
	"context"
	"errors"
	"fmt"

	"github.com/qdm12/smsglobal/internal/soap"
)

const (
	ProcedureValidateLogin = "apiValidateLogin"
	ProcedureSendSMS       = "apiSendSms"
	ProcedureBalanceCheck  = "apiBalanceCheck"
)

const authenticationFailedMessage = "Failed to validate"

// Client sends SMS messages and checks the account balance through
// the SMSGlobal SOAP gateway.
//
// A Client keeps the session ticket and the last error, and updates
// them in place on every call: it is not safe for concurrent use.
// Once an error is recorded, remote calls are refused until the error
// is cleared with SetError(""). Clearing the error does not
// authenticate again.
type Client struct {
	credentials       Credentials
	defaultISOCountry string
	caller            Caller
	logger            Logger

	ticketID string
	lastErr  error
}

// New creates the transport with the dialer given and authenticates
// with the credentials from settings. It never fails: a failure is
// recorded as the client last error, see Err and LastError.
func New(ctx context.Context, settings Settings, dialer Dialer, logger Logger) *Client {
	settings.SetDefaults()

	client := &Client{
		credentials:       settings.Credentials,
		defaultISOCountry: settings.DefaultISOCountry,
		logger:            logger,
	}

	caller, err := dialer.Dial(ctx, settings.WSDLURL)
	if err != nil {
		client.lastErr = newError(ErrTransport, err.Error(), err)
		logger.Warn("creating transport: " + err.Error())
		return client
	}
	client.caller = caller

	err = client.authenticate(ctx)
	if err != nil {
		logger.Warn("authenticating: " + err.Error())
	}

	return client
}

func (c *Client) authenticate(ctx context.Context) (err error) {
	params := soap.Params{
		{Name: "user", Value: c.credentials.User},
		{Name: "password", Value: c.credentials.Password},
	}

	response, err := c.call(ctx, ProcedureValidateLogin, params)
	if err != nil {
		return err
	}

	if response.ErrorCode() != "" {
		c.lastErr = newError(ErrAuthentication, authenticationFailedMessage, nil)
		return c.lastErr
	}

	ticketID, _ := response.Lookup("resp.ticket")
	if ticketID == "" {
		c.lastErr = newError(ErrAuthentication, authenticationFailedMessage, ErrTicketMissing)
		return c.lastErr
	}

	c.ticketID = ticketID
	return nil
}

// TicketID returns the session ticket, or the empty string if
// the client never authenticated successfully.
func (c *Client) TicketID() string {
	return c.ticketID
}

// Err returns the last error recorded, or nil.
func (c *Client) Err() error {
	return c.lastErr
}

// LastError returns the description of the last error recorded,
// or the empty string if there is none.
func (c *Client) LastError() string {
	if c.lastErr == nil {
		return ""
	}
	return c.lastErr.Error()
}

// SetError records message as the last error. An empty message clears
// the last error and allows remote calls again.
func (c *Client) SetError(message string) {
	if message == "" {
		c.lastErr = nil
		return
	}
	c.lastErr = newError(ErrCaller, message, nil)
}

// call invokes the remote procedure and parses its payload,
// recording transport and parse failures as the last error.
func (c *Client) call(ctx context.Context, procedure string,
	params soap.Params) (response Response, err error) {
	c.logger.Debug("calling remote procedure " + procedure)

	payload, err := c.caller.Call(ctx, procedure, params)
	if err != nil {
		var fault *soap.Fault
		message := err.Error()
		if errors.As(err, &fault) {
			message = fault.Error()
		}
		c.lastErr = newError(ErrTransport, message, err)
		return response, c.lastErr
	}

	return c.parseResponse(payload)
}

func (c *Client) parseResponse(payload string) (response Response, err error) {
	response, err = parseXML(payload)
	if err != nil {
		c.lastErr = newError(ErrParse, fmt.Sprintf("parsing response: %s", err), err)
		return Response{}, c.lastErr
	}
	return response, nil
}
