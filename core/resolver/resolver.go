package resolver

import (
	"context"
	"fmt"
	"net/netip"
	"net/url"
	"strings"
	"time"

	apperrors "prefix-list-updater/core/errors"
)

// Resolver returns the caller's current public IPv4 address.
type Resolver interface {
	// Resolve performs a single lookup. It does not retry; failures are
	// *errors.NetworkError.
	Resolve(ctx context.Context) (netip.Addr, error)
}

// New creates a resolver for the configured URL. The scheme selects the
// implementation: http and https use HTTPResolver, dns uses DNSResolver.
func New(cfg Config) (Resolver, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid resolver url %q: %w", cfg.URL, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return NewHTTPResolver(cfg.URL, timeoutDuration), nil
	case "dns":
		return NewDNSResolver(u, timeoutDuration)
	default:
		return nil, fmt.Errorf("unsupported resolver scheme %q", u.Scheme)
	}
}

// ValidateURL reports whether raw is a URL New can build a resolver from.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("url %q has no host", raw)
		}
		return nil
	case "dns":
		_, err := NewDNSResolver(u, time.Second)
		return err
	default:
		return fmt.Errorf("unsupported resolver scheme %q", u.Scheme)
	}
}

// parseAddress validates a resolver answer. Surrounding whitespace is
// ignored; IPv4-mapped IPv6 is unmapped; any other IPv6 address is rejected.
func parseAddress(source, raw string) (netip.Addr, error) {
	s := strings.TrimSpace(raw)
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, apperrors.NewNetworkError(source, fmt.Sprintf("invalid IP address %q", truncate(s, 64)), err)
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return netip.Addr{}, apperrors.NewNetworkError(source, fmt.Sprintf("%s is not an IPv4 address", addr), nil)
	}
	return addr, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
