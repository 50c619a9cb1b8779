package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/qdm12/smsglobal/internal/headers"
)

// Client calls remote procedures of a single SOAP service.
type Client struct {
	httpClient *http.Client
	namespace  string
	endpoint   *url.URL
	actions    map[string]string
}

func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Call invokes the remote procedure with the parameters given and
// returns the raw text of its return value.
func (c *Client) Call(ctx context.Context, procedure string, params Params) (
	payload string, err error) {
	requestBody, err := buildEnvelope(c.namespace, procedure, params)
	if err != nil {
		return "", fmt.Errorf("building request envelope: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint.String(), bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	headers.SetUserAgent(request)
	headers.SetContentType(request, "text/xml; charset=utf-8")
	headers.SetSOAPAction(request, c.soapAction(procedure))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("doing HTTP request: %w", err)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		_ = response.Body.Close()
		return "", fmt.Errorf("reading response body: %w", err)
	}

	err = response.Body.Close()
	if err != nil {
		return "", fmt.Errorf("closing response body: %w", err)
	}

	payload, err = decodeEnvelope(data, procedure)
	var fault *Fault
	switch {
	case errors.As(err, &fault):
		// faults usually come with a 500 status code
		return "", err
	case response.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: %d %s", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode))
	case err != nil:
		return "", fmt.Errorf("decoding response envelope: %w", err)
	}

	return payload, nil
}

func (c *Client) soapAction(procedure string) string {
	action, ok := c.actions[procedure]
	if ok && action != "" {
		return action
	}
	return c.namespace + "#" + procedure
}
