package smsglobal

import (
	"context"

	"github.com/qdm12/smsglobal/internal/soap"
)

// CheckBalance requests the account balance for the ISO 3166 country
// code given, using the default country if isoCountry is empty.
func (c *Client) CheckBalance(ctx context.Context, isoCountry string) (
	response Response, err error) {
	if isoCountry == "" {
		isoCountry = c.defaultISOCountry
	}

	params := soap.Params{
		{Name: "ticket", Value: optional(c.ticketID)},
		{Name: "iso_country", Value: isoCountry},
	}

	result, err := c.Invoke(ctx, ProcedureBalanceCheck, params)
	return result.Response, err
}
