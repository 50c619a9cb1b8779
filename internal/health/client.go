package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

func IsClientMode(args []string) bool {
	return len(args) > 1 && args[1] == "healthcheck"
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

var ErrUnhealthy = errors.New("program is unhealthy")

// Query sends an HTTP request to the health route of the
// long running instance of the program.
func (c *Client) Query(ctx context.Context, url string) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("querying health route: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusOK {
		return nil
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: reading body: %w", ErrUnhealthy, response.Status, err)
	}
	return fmt.Errorf("%w: %s: %s", ErrUnhealthy, response.Status,
		strings.TrimSpace(string(b)))
}

// MakeURL returns the health route URL of the HTTP server listening on
// listeningAddress, with the loopback address if the host is unspecified.
func MakeURL(listeningAddress, rootURL string) string {
	host, port, err := net.SplitHostPort(listeningAddress)
	if err != nil { // address is validated in settings
		panic(err)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	rootURL = strings.TrimSuffix(rootURL, "/")
	return "http://" + net.JoinHostPort(host, port) + rootURL + "/api/v1/health"
}
