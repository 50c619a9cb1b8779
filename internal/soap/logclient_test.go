package soap

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/smsglobal/internal/soap/mock_soap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LogClient(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		requestMethod      string
		requestHeaders     http.Header
		requestBodyNil     bool
		requestBodyString  string
		requestLineRegex   string
		responseStatusCode int
		responseBodyString string
		responseLineRegex  string
	}{
		"POST with headers and redacted password": {
			requestMethod: http.MethodPost,
			requestHeaders: http.Header{
				"Soapaction": []string{`"urn:smsglobal#apiValidateLogin"`},
			},
			requestBodyString: `<user xsi:type="xsd:string">john</user>` +
				`<password xsi:type="xsd:string">secret</password>`,
			requestLineRegex: `^POST http://127.0.0.1:[0-9]{1,5} \| ` +
				`headers: Soapaction: "urn:smsglobal#apiValidateLogin" \| ` +
				`body: <user xsi:type="xsd:string">john</user>` +
				`<password xsi:type="xsd:string">\[redacted\]</password>$`,
			responseStatusCode: http.StatusOK,
			responseBodyString: "response\nbody",
			responseLineRegex:  `^200 OK \| headers: .+ \| body: responsebody$`,
		},
		"simple GET": {
			requestMethod:      http.MethodGet,
			requestBodyNil:     true,
			requestLineRegex:   `^GET http://127.0.0.1:[0-9]{1,5}$`,
			responseStatusCode: http.StatusAccepted,
			responseBodyString: "response body",
			responseLineRegex:  `^202 Accepted \| headers: .+ \| body: response body$`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			handler := http.HandlerFunc(func(rw http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.requestMethod, request.Method)
				for key, expectedValues := range testCase.requestHeaders {
					assert.Equal(t, expectedValues, request.Header[key])
				}

				b, err := io.ReadAll(request.Body)
				require.NoError(t, err)
				// the proxied request body is not redacted
				assert.Equal(t, testCase.requestBodyString, string(b))

				rw.WriteHeader(testCase.responseStatusCode)
				_, err = rw.Write([]byte(testCase.responseBodyString))
				require.NoError(t, err)
			})
			server := httptest.NewServer(handler)
			t.Cleanup(server.Close)

			logger := mock_soap.NewMockDebugLogger(ctrl)
			requestLog := logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
				Do(func(s string) {
					assert.Regexp(t, testCase.requestLineRegex, s)
				})
			logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
				Do(func(s string) {
					assert.Regexp(t, testCase.responseLineRegex, s)
				}).After(requestLog)

			client := server.Client()
			logClient := makeLogClient(client, logger)

			assert.Equal(t, client.Timeout, logClient.Timeout)

			var requestBody io.Reader
			if !testCase.requestBodyNil {
				requestBody = bytes.NewBufferString(testCase.requestBodyString)
			}
			request, err := http.NewRequestWithContext(context.Background(),
				testCase.requestMethod, server.URL, requestBody)
			require.NoError(t, err)
			if testCase.requestHeaders != nil {
				request.Header = testCase.requestHeaders
			}

			response, err := logClient.Do(request)
			require.NoError(t, err)
			t.Cleanup(func() {
				_ = response.Body.Close()
			})

			assert.Equal(t, testCase.responseStatusCode, response.StatusCode)
			b, err := io.ReadAll(response.Body)
			require.NoError(t, err)
			assert.Equal(t, testCase.responseBodyString, string(b))
		})
	}
}
