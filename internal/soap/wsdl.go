package soap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/beevik/etree"
	"github.com/qdm12/smsglobal/internal/headers"
)

type serviceDescription struct {
	namespace string
	endpoint  *url.URL
	// actions maps operation names to their SOAPAction value.
	actions map[string]string
}

// Dialer creates SOAP clients from service descriptions.
type Dialer struct {
	client *http.Client
}

// NewDialer returns a dialer using the HTTP client given. If the logger
// is not nil, every HTTP request and response is logged at the debug level.
func NewDialer(client *http.Client, logger DebugLogger) *Dialer {
	if logger != nil {
		client = makeLogClient(client, logger)
	}
	return &Dialer{
		client: client,
	}
}

// Dial fetches and parses the WSDL document at wsdlURL and returns a
// client bound to the service endpoint it describes.
func (d *Dialer) Dial(ctx context.Context, wsdlURL string) (client *Client, err error) {
	u, err := url.Parse(wsdlURL)
	if err != nil {
		return nil, fmt.Errorf("parsing WSDL URL: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	headers.SetUserAgent(request)
	headers.SetAccept(request, "text/xml")

	response, err := d.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fetching WSDL: %w", err)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		_ = response.Body.Close()
		return nil, fmt.Errorf("reading WSDL: %w", err)
	}

	err = response.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("closing response body: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d %s", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode))
	}

	description, err := parseWSDL(data, u)
	if err != nil {
		return nil, fmt.Errorf("parsing WSDL: %w", err)
	}

	return &Client{
		httpClient: d.client,
		namespace:  description.namespace,
		endpoint:   description.endpoint,
		actions:    description.actions,
	}, nil
}

func parseWSDL(data []byte, wsdlURL *url.URL) (description serviceDescription, err error) {
	document := etree.NewDocument()
	err = document.ReadFromBytes(data)
	if err != nil {
		return description, fmt.Errorf("%w: %w", ErrWSDLMalformed, err)
	}

	definitions := document.Root()
	if definitions == nil || definitions.Tag != "definitions" {
		return description, fmt.Errorf("%w: root element is not definitions", ErrWSDLMalformed)
	}

	description.namespace = definitions.SelectAttrValue("targetNamespace", "")
	if description.namespace == "" {
		return description, fmt.Errorf("%w", ErrNamespaceMissing)
	}

	location := findServiceLocation(definitions)
	if location == "" {
		return description, fmt.Errorf("%w", ErrEndpointMissing)
	}

	endpoint, err := url.Parse(location)
	if err != nil {
		return description, fmt.Errorf("parsing service location: %w", err)
	}
	description.endpoint = wsdlURL.ResolveReference(endpoint)

	description.actions = make(map[string]string)
	for _, binding := range childElements(definitions, "binding") {
		for _, operation := range childElements(binding, "operation") {
			name := operation.SelectAttrValue("name", "")
			soapOperation := childElement(operation, "operation")
			if name == "" || soapOperation == nil {
				continue
			}
			description.actions[name] = soapOperation.SelectAttrValue("soapAction", "")
		}
	}

	return description, nil
}

func findServiceLocation(definitions *etree.Element) (location string) {
	for _, service := range childElements(definitions, "service") {
		for _, port := range childElements(service, "port") {
			address := childElement(port, "address")
			if address == nil {
				continue
			}
			location = address.SelectAttrValue("location", "")
			if location != "" {
				return location
			}
		}
	}
	return ""
}
