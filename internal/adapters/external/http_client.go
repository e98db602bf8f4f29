// Package external provides adapters for the upstream weather APIs.
package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newDefaultHTTPClient(timeout time.Duration) HTTPClient {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// upstreamResponse is a fully read upstream reply
type upstreamResponse struct {
	StatusCode int
	Body       []byte
}

// get performs exactly one GET request and reads the whole body.
// Only transport problems are errors here; status handling belongs to the caller.
func get(ctx context.Context, client HTTPClient, logger ports.Logger, provider string, endpoint *url.URL) (*upstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("failed to build %s request", provider), err)
	}

	logger.Debug("Calling upstream weather API",
		ports.F("provider", provider),
		ports.F("path", endpoint.Path))

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("failed to call %s", provider), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close response body", ports.F("provider", provider), ports.F("error", closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("failed to read %s response", provider), err)
	}

	return &upstreamResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
