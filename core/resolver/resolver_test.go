package resolver_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"net/url"
	"testing"
	"time"

	apperrors "prefix-list-updater/core/errors"
	"prefix-list-updater/core/resolver"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPResolver(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{"PlainAddress", http.StatusOK, "203.0.113.42", "203.0.113.42", false},
		{"TrailingNewline", http.StatusOK, "  203.0.113.42\r\n", "203.0.113.42", false},
		{"MappedIPv6", http.StatusOK, "::ffff:203.0.113.42", "203.0.113.42", false},
		{"ServerError", http.StatusInternalServerError, "203.0.113.42", "", true},
		{"NotFound", http.StatusNotFound, "", "", true},
		{"Garbage", http.StatusOK, "<html>rate limited</html>", "", true},
		{"Empty", http.StatusOK, "", "", true},
		{"IPv6", http.StatusOK, "2001:db8::1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			r := resolver.NewHTTPResolver(srv.URL, time.Second)
			addr, err := r.Resolve(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrNetwork))
				assert.False(t, addr.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, netip.MustParseAddr(tt.want), addr)
		})
	}
}

func TestHTTPResolver_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	_, err := resolver.NewHTTPResolver(endpoint, time.Second).Resolve(context.Background())

	var netErr *apperrors.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, endpoint, netErr.URL)
}

func TestHTTPResolver_ContextTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := resolver.NewHTTPResolver(srv.URL, time.Minute).Resolve(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrNetwork))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

// startDNSServer serves answers on a loopback UDP port.
func startDNSServer(t *testing.T, handler dns.HandlerFunc) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	started := make(chan struct{})
	srv := &dns.Server{PacketConn: pc, Handler: handler, NotifyStartedFunc: func() { close(started) }}
	go func() { _ = srv.ActivateAndServe() }()
	<-started
	t.Cleanup(func() { _ = srv.Shutdown() })

	return pc.LocalAddr().String()
}

func TestDNSResolver(t *testing.T) {
	addr := startDNSServer(t, func(w dns.ResponseWriter, req *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(req)
		q := req.Question[0]
		switch {
		case q.Name == "myip.test." && q.Qtype == dns.TypeA:
			rr, _ := dns.NewRR("myip.test. 0 IN A 203.0.113.42")
			m.Answer = append(m.Answer, rr)
		case q.Name == "txt.test." && q.Qtype == dns.TypeTXT:
			rr, _ := dns.NewRR(`txt.test. 0 IN TXT "198.51.100.7"`)
			m.Answer = append(m.Answer, rr)
		case q.Name == "empty.test.":
		default:
			m.Rcode = dns.RcodeNameError
		}
		_ = w.WriteMsg(m)
	})

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"ARecord", "dns://" + addr + "/myip.test", "203.0.113.42", false},
		{"TXTRecord", "dns://" + addr + "/txt.test?type=TXT", "198.51.100.7", false},
		{"NXDomain", "dns://" + addr + "/missing.test", "", true},
		{"NoAnswer", "dns://" + addr + "/empty.test", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolver.New(resolver.Config{URL: tt.url, TimeoutSeconds: 1})
			require.NoError(t, err)

			got, err := r.Resolve(context.Background())
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrNetwork))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, netip.MustParseAddr(tt.want), got)
		})
	}
}

func TestNewDNSResolver_Invalid(t *testing.T) {
	for _, raw := range []string{"dns:///myip.test", "dns://127.0.0.1", "dns://127.0.0.1/x?type=AAAA"} {
		t.Run(raw, func(t *testing.T) {
			u, err := url.Parse(raw)
			require.NoError(t, err)
			_, err = resolver.NewDNSResolver(u, time.Second)
			assert.Error(t, err)
		})
	}
}

func TestNew_Scheme(t *testing.T) {
	r, err := resolver.New(resolver.Config{URL: "https://api.ipify.org"})
	require.NoError(t, err)
	assert.IsType(t, &resolver.HTTPResolver{}, r)

	r, err = resolver.New(resolver.Config{URL: "dns://resolver1.opendns.com/myip.opendns.com"})
	require.NoError(t, err)
	assert.IsType(t, &resolver.DNSResolver{}, r)

	_, err = resolver.New(resolver.Config{URL: "ftp://example.com"})
	assert.Error(t, err)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://api.ipify.org", false},
		{"http://checkip.amazonaws.com", false},
		{"dns://resolver1.opendns.com/myip.opendns.com", false},
		{"dns://ns1.google.com/o-o.myaddr.l.google.com?type=TXT", false},
		{"https://", true},
		{"dns:///myip.opendns.com", true},
		{"dns://resolver1.opendns.com", true},
		{"ftp://example.com", true},
		{"api.ipify.org", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := resolver.ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
