package smsglobal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseXML(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		payload    string
		response   Response
		errWrapped error
		errMessage string
	}{
		"login": {
			payload: `<?xml version="1.0"?>` + "\n" +
				`<resp err="0">` + "\n  <ticket> T1 </ticket>\n</resp>",
			response: Response{Root: &Node{
				Name:  "resp",
				Attrs: []Attr{{Name: "err", Value: "0"}},
				Children: []*Node{
					{Name: "ticket", Text: "T1"},
				},
			}},
		},
		"namespace_declaration_ignored": {
			payload: `<resp xmlns="urn:smsglobal" err="3"/>`,
			response: Response{Root: &Node{
				Name:  "resp",
				Attrs: []Attr{{Name: "err", Value: "3"}},
			}},
		},
		"empty": {
			payload:    "",
			errWrapped: ErrRootMissing,
			errMessage: "root element is missing",
		},
		"unclosed": {
			payload: "<resp><ticket>T1</ticket>",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			response, err := parseXML(testCase.payload)

			if testCase.response.Root == nil {
				require.Error(t, err)
				if testCase.errWrapped != nil {
					assert.ErrorIs(t, err, testCase.errWrapped)
					assert.EqualError(t, err, testCase.errMessage)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.response, response)
		})
	}
}

func Test_Response_Lookup(t *testing.T) {
	t.Parallel()

	response, err := parseXML(`<resp err="0"><ticket>T1</ticket>` +
		`<balance currency="AUD"><credit>3.2</credit></balance></resp>`)
	require.NoError(t, err)

	testCases := map[string]struct {
		path  string
		value string
		ok    bool
	}{
		"root_attribute":   {path: "resp.@err", value: "0", ok: true},
		"child_text":       {path: "resp.ticket", value: "T1", ok: true},
		"nested_text":      {path: "resp.balance.credit", value: "3.2", ok: true},
		"nested_attribute": {path: "resp.balance.@currency", value: "AUD", ok: true},
		"missing_child":    {path: "resp.msgid"},
		"missing_attr":     {path: "resp.@code"},
		"wrong_root":       {path: "response.ticket"},
		"attribute_not_last": {
			path: "resp.@err.ticket",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			value, ok := response.Lookup(testCase.path)

			assert.Equal(t, testCase.value, value)
			assert.Equal(t, testCase.ok, ok)
		})
	}

	var empty Response
	_, ok := empty.Lookup("resp")
	assert.False(t, ok)
}

func Test_Response_ErrorCode(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		payload string
		code    string
	}{
		"no_attribute":    {payload: `<resp/>`},
		"zero":            {payload: `<resp err="0"/>`},
		"empty_attribute": {payload: `<resp err=""/>`},
		"error":           {payload: `<resp err="12"/>`, code: "12"},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			response, err := parseXML(testCase.payload)
			require.NoError(t, err)

			assert.Equal(t, testCase.code, response.ErrorCode())
		})
	}
}

func Test_Response_Map(t *testing.T) {
	t.Parallel()

	response, err := parseXML(`<resp err="0">` +
		`<sms id="1">queued</sms><sms id="2">sent</sms><credit>1.5</credit></resp>`)
	require.NoError(t, err)

	expected := map[string]any{
		"resp": map[string]any{
			"@err": "0",
			"sms": []any{
				map[string]any{"@id": "1", "@": "queued"},
				map[string]any{"@id": "2", "@": "sent"},
			},
			"credit": "1.5",
		},
	}
	assert.Equal(t, expected, response.Map())
	assert.Equal(t, map[string]any{}, Response{}.Map())
}

func Test_Response_String(t *testing.T) {
	t.Parallel()

	response, err := parseXML(`<resp err="0"><ticket>T1</ticket></resp>`)
	require.NoError(t, err)

	const expected = "resp @err=0\n" +
		"  ticket: T1"
	assert.Equal(t, expected, response.String())
}
