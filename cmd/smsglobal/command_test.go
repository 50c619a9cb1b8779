package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/qdm12/smsglobal/internal/smsglobal"
	"github.com/qdm12/smsglobal/internal/soap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	sms        smsglobal.SMS
	isoCountry string
	operation  string
	params     soap.Params
	response   smsglobal.Response
	result     smsglobal.Result
	err        error
}

func (f *fakeGateway) SendSMS(_ context.Context, sms smsglobal.SMS) (smsglobal.Response, error) {
	f.sms = sms
	return f.response, f.err
}

func (f *fakeGateway) CheckBalance(_ context.Context, isoCountry string) (smsglobal.Response, error) {
	f.isoCountry = isoCountry
	return f.response, f.err
}

func (f *fakeGateway) Invoke(_ context.Context, operation string,
	params soap.Params) (smsglobal.Result, error) {
	f.operation = operation
	f.params = params
	return f.result, f.err
}

func Test_runCommand(t *testing.T) {
	t.Parallel()

	response := smsglobal.Response{Root: &smsglobal.Node{
		Name:     "resp",
		Children: []*smsglobal.Node{{Name: "credit", Text: "3"}},
	}}

	t.Run("send", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeGateway{response: response}
		var output bytes.Buffer

		err := runCommand(context.Background(), gateway, "send",
			[]string{"A", "B", "hi", "2024-01-02 03:04:05"}, &output)

		require.NoError(t, err)
		expectedSMS := smsglobal.SMS{From: "A", To: "B", Content: "hi", Schedule: "2024-01-02 03:04:05"}
		assert.Equal(t, expectedSMS, gateway.sms)
		assert.Equal(t, "resp\n  credit: 3\n", output.String())
	})

	t.Run("send_missing_content", func(t *testing.T) {
		t.Parallel()
		err := runCommand(context.Background(), &fakeGateway{}, "send",
			[]string{"A", "B"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errArgumentsCount)
	})

	t.Run("balance", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeGateway{response: response}

		err := runCommand(context.Background(), gateway, "balance",
			[]string{"nz"}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "NZ", gateway.isoCountry)
	})

	t.Run("balance_gated", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeGateway{err: smsglobal.ErrGated}

		err := runCommand(context.Background(), gateway, "balance", nil, &bytes.Buffer{})

		assert.ErrorIs(t, err, smsglobal.ErrGated)
		assert.EqualError(t, err, "running balance: last error is not cleared")
	})

	t.Run("invoke_local_value", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeGateway{result: smsglobal.Result{Value: "T1"}}
		var output bytes.Buffer

		err := runCommand(context.Background(), gateway, "invoke",
			[]string{"getTicketId"}, &output)

		require.NoError(t, err)
		assert.Equal(t, "getTicketId", gateway.operation)
		assert.Equal(t, "T1\n", output.String())
	})

	t.Run("invoke_remote", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeGateway{result: smsglobal.Result{Response: response}}
		var output bytes.Buffer

		err := runCommand(context.Background(), gateway, "invoke",
			[]string{"apiBalanceCheck", "ticket=T1", "iso_country=AU"}, &output)

		require.NoError(t, err)
		expectedParams := soap.Params{
			{Name: "ticket", Value: "T1"},
			{Name: "iso_country", Value: "AU"},
		}
		assert.Equal(t, expectedParams, gateway.params)
		assert.Equal(t, "resp\n  credit: 3\n", output.String())
	})
}

func Test_parseParams(t *testing.T) {
	t.Parallel()

	params, err := parseParams([]string{"ticket=T1", "unicode=0", "sms_from=", "msg_content=a=b"})
	require.NoError(t, err)
	expected := soap.Params{
		{Name: "ticket", Value: "T1"},
		{Name: "unicode", Value: 0},
		{Name: "sms_from", Value: nil},
		{Name: "msg_content", Value: "a=b"},
	}
	assert.Equal(t, expected, params)

	_, err = parseParams([]string{"ticket"})
	assert.ErrorIs(t, err, errParamMalformed)
	assert.EqualError(t, err, `parameter is malformed: "ticket" must be in the form name=value`)
}
