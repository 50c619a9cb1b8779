package soap

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DebugLogger

type DebugLogger interface {
	Debug(s string)
}

func makeLogClient(client *http.Client, logger DebugLogger) (newClient *http.Client) {
	newClient = &http.Client{
		Timeout: client.Timeout,
	}

	originalTransport := client.Transport
	if originalTransport == nil {
		originalTransport = http.DefaultTransport
	}

	transport, ok := originalTransport.(*http.Transport)
	if !ok {
		panic(fmt.Sprintf("transport %T is not *http.Transport", originalTransport))
	}

	newClient.Transport = &loggingRoundTripper{
		proxied: transport.Clone(),
		logger:  logger,
	}

	return newClient
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	lrt.logger.Debug(requestToString(request))

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	lrt.logger.Debug(responseToString(response))

	return response, nil
}

func requestToString(request *http.Request) (s string) {
	s = request.Method + " " + request.URL.String()

	if len(request.Header) > 0 {
		s += " | headers: " + headerToString(request.Header)
	}

	if request.Body != nil && request.Body != http.NoBody {
		newBody, bodyString := readAndResetBody(request.Body)
		request.Body = newBody
		s += " | body: " + redactPassword(bodyString)
	}

	return s
}

func responseToString(response *http.Response) (s string) {
	s = response.Status

	if len(response.Header) > 0 {
		s += " | headers: " + headerToString(response.Header)
	}

	if response.Body != nil {
		newBody, bodyString := readAndResetBody(response.Body)
		response.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func headerToString(header http.Header) (s string) {
	headers := make([]string, 0, len(header))
	for key, values := range header {
		headerString := key + ": " + strings.Join(values, ",")
		headers = append(headers, headerString)
	}
	sort.Strings(headers)
	return strings.Join(headers, "; ")
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	if err != nil {
		return body, "error reading body: " + err.Error()
	}
	_ = body.Close()
	return io.NopCloser(bytes.NewBuffer(b)), toSingleLine(string(b))
}

func toSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.ReplaceAll(line, "  ", " ")
	line = strings.ReplaceAll(line, "  ", " ")
	return line
}

var regexPasswordElement = regexp.MustCompile(`(<password[^>]*>)[^<]*(</password>)`)

func redactPassword(body string) string {
	return regexPasswordElement.ReplaceAllString(body, "${1}[redacted]${2}")
}
