package resolver

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strings"
	"time"

	apperrors "prefix-list-updater/core/errors"

	"github.com/miekg/dns"
)

const defaultDNSPort = "53"

// DNSResolver discovers the public address through a DNS service that
// answers a well-known name with the querying address, e.g.
// dns://resolver1.opendns.com/myip.opendns.com. Add ?type=TXT for services
// answering with a TXT record (o-o.myaddr.l.google.com on ns1.google.com).
type DNSResolver struct {
	source string
	server string
	name   string
	qtype  uint16
	client *dns.Client
}

// NewDNSResolver creates a resolver from a dns:// URL.
func NewDNSResolver(u *url.URL, timeout time.Duration) (*DNSResolver, error) {
	server := u.Host
	if server == "" {
		return nil, fmt.Errorf("dns resolver url %q has no server", u.String())
	}
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(strings.Trim(server, "[]"), defaultDNSPort)
	}

	name := strings.Trim(u.Path, "/")
	if name == "" {
		return nil, fmt.Errorf("dns resolver url %q has no query name", u.String())
	}

	qtype := dns.TypeA
	if t := u.Query().Get("type"); t != "" {
		switch strings.ToUpper(t) {
		case "A":
		case "TXT":
			qtype = dns.TypeTXT
		default:
			return nil, fmt.Errorf("unsupported dns record type %q", t)
		}
	}

	return &DNSResolver{
		source: u.String(),
		server: server,
		name:   dns.Fqdn(name),
		qtype:  qtype,
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
	}, nil
}

// Resolve implements Resolver.
func (r *DNSResolver) Resolve(ctx context.Context) (netip.Addr, error) {
	req := new(dns.Msg)
	req.SetQuestion(r.name, r.qtype)

	resp, _, err := r.client.ExchangeContext(ctx, req, r.server)
	if err != nil {
		return netip.Addr{}, apperrors.NewNetworkError(r.source, "query failed", err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return netip.Addr{}, apperrors.NewNetworkError(r.source, fmt.Sprintf("server answered %s", dns.RcodeToString[resp.Rcode]), nil)
	}

	for _, rr := range resp.Answer {
		switch rec := rr.(type) {
		case *dns.A:
			if addr, ok := netip.AddrFromSlice(rec.A); ok {
				return parseAddress(r.source, addr.String())
			}
		case *dns.TXT:
			if len(rec.Txt) > 0 {
				return parseAddress(r.source, rec.Txt[0])
			}
		}
	}

	return netip.Addr{}, apperrors.NewNetworkError(r.source, fmt.Sprintf("no %s record in answer", dns.TypeToString[r.qtype]), nil)
}
