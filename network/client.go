// Package network provides the pre-configured HTTP clients used for store endpoint communication.
package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/storecheck-cli/storecheck/constant"
	"github.com/storecheck-cli/storecheck/util"
)

// Timeout bounds every store request. A check performs exactly one attempt within it.
const Timeout = 10 * time.Second

// Client is the shared HTTP client used for plain API endpoints.
var Client = &http.Client{
	Timeout:   Timeout,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with sensible pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = Timeout
	return t
}

// Fetch performs a single bounded GET against the given URL and returns the response body.
// Any status other than 200 is an error; the caller decides whether that is fatal.
func Fetch(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
