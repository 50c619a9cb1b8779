package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qdm12/smsglobal/internal/smsglobal"
	"github.com/qdm12/smsglobal/internal/soap"
)

type Gateway interface {
	SendSMS(ctx context.Context, sms smsglobal.SMS) (response smsglobal.Response, err error)
	CheckBalance(ctx context.Context, isoCountry string) (response smsglobal.Response, err error)
	Invoke(ctx context.Context, operation string, params soap.Params) (result smsglobal.Result, err error)
}

var (
	errArgumentsCount = errors.New("number of arguments is not valid")
	errParamMalformed = errors.New("parameter is malformed")
)

// runCommand runs a single gateway operation and writes its result to w.
func runCommand(ctx context.Context, gateway Gateway, command string,
	args []string, w io.Writer) (err error) {
	var response smsglobal.Response
	switch command {
	case "send":
		const minArgs, maxArgs = 3, 4
		if len(args) < minArgs || len(args) > maxArgs {
			return fmt.Errorf("%w: usage is send FROM TO CONTENT [SCHEDULE]", errArgumentsCount)
		}
		sms := smsglobal.SMS{From: args[0], To: args[1], Content: args[2]}
		if len(args) == maxArgs {
			sms.Schedule = args[3]
		}
		response, err = gateway.SendSMS(ctx, sms)
	case "balance":
		var isoCountry string
		switch len(args) {
		case 0:
		case 1:
			isoCountry = strings.ToUpper(args[0])
		default:
			return fmt.Errorf("%w: usage is balance [ISO_COUNTRY]", errArgumentsCount)
		}
		response, err = gateway.CheckBalance(ctx, isoCountry)
	case "invoke":
		if len(args) == 0 {
			return fmt.Errorf("%w: usage is invoke PROCEDURE [name=value ...]", errArgumentsCount)
		}
		params, err := parseParams(args[1:])
		if err != nil {
			return err
		}
		result, err := gateway.Invoke(ctx, args[0], params)
		if err != nil {
			return fmt.Errorf("invoking %s: %w", args[0], err)
		}
		if result.Response.Root == nil {
			_, err = fmt.Fprintln(w, result.Value)
			return err
		}
		response = result.Response
	}

	if err != nil {
		return fmt.Errorf("running %s: %w", command, err)
	}

	_, err = fmt.Fprintln(w, response.String())
	return err
}

// parseParams parses name=value arguments keeping their order.
// Integer values are sent as integers and empty values as nil.
func parseParams(args []string) (params soap.Params, err error) {
	params = make(soap.Params, len(args))
	for i, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q must be in the form name=value", errParamMalformed, arg)
		}
		params[i].Name = name

		switch integer, err := strconv.Atoi(value); {
		case value == "":
		case err == nil:
			params[i].Value = integer
		default:
			params[i].Value = value
		}
	}
	return params, nil
}
