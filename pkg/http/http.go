// Package http provides the HTTP client used for version-discovery calls
// against remote data providers. Byte transfers of the data files themselves
// go through pkg/download instead.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GenomicMedLab/wags-tails/pkg/errors"
)

// DefaultTimeout bounds every remote call so a misbehaving provider cannot
// hang a retrieval request indefinitely.
const DefaultTimeout = 30 * time.Second

const defaultUserAgent = "wags-tails/1.0"

// Client handles HTTP operations against remote data providers.
type Client struct {
	client    *http.Client
	userAgent string
}

// NewClient creates a new HTTP client with the given request timeout. A
// nonpositive timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

// GetJSON fetches the given URL and decodes the response body into v.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, v any) error {
	body, err := c.get(ctx, url, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(errors.ErrRemoteData, "malformed JSON response from %s", url)
	}
	return nil
}

// GetText fetches the given URL and returns the response body as a string.
func (c *Client) GetText(ctx context.Context, url string, headers map[string]string) (string, error) {
	body, err := c.get(ctx, url, headers)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Check reports whether a GET against the URL returns HTTP 200. Transport
// failures are returned as errors; non-200 statuses are not.
func (c *Client) Check(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return false, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errors.Wrapf(errors.ErrDownloadFailed, "request to %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK, nil
}

func (c *Client) get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDownloadFailed, "request to %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	// Ranged requests legitimately answer 206.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, fmt.Errorf("unexpected status code %d from %s: %w", resp.StatusCode, url, errors.ErrDownloadFailed)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	return body, nil
}
