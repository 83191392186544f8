package resolver

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"time"

	apperrors "prefix-list-updater/core/errors"
)

// maxBodySize caps how much of a response is read. An address is a few dozen bytes.
const maxBodySize = 1024

// HTTPResolver asks a plain-text "what is my IP" web service.
type HTTPResolver struct {
	url    string
	client *http.Client
}

// NewHTTPResolver creates a resolver for url with the given per-call timeout.
func NewHTTPResolver(url string, timeout time.Duration) *HTTPResolver {
	// Custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &HTTPResolver{
		url: url,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Resolve implements Resolver.
func (r *HTTPResolver) Resolve(ctx context.Context) (netip.Addr, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return netip.Addr{}, apperrors.NewNetworkError(r.url, "failed to build request", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := r.client.Do(req)
	if err != nil {
		return netip.Addr{}, apperrors.NewNetworkError(r.url, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return netip.Addr{}, apperrors.NewNetworkError(r.url, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return netip.Addr{}, apperrors.NewNetworkError(r.url, "failed to read response", err)
	}

	return parseAddress(r.url, string(body))
}
