// Package network builds outbound HTTP clients for upstream APIs and feed
// fetches, honouring the proxy and IP stack chosen in settings.
package network

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

const (
	IPStackDefault = "default"
	IPStackIPv4    = "ipv4"
	IPStackIPv6    = "ipv6"
)

const dialTimeout = 10 * time.Second

// ProxyProvider supplies the proxy URL. Defined here to avoid an import
// cycle with the service package.
type ProxyProvider interface {
	GetProxyURL(ctx context.Context) string
}

type IPStackProvider interface {
	GetIPStack(ctx context.Context) string
}

type ClientFactory struct {
	proxyProvider   ProxyProvider
	ipStackProvider IPStackProvider
	testHTTPClient  *http.Client
}

func NewClientFactory(proxyProvider ProxyProvider, ipStackProvider IPStackProvider) *ClientFactory {
	noop := &noopProvider{}
	if proxyProvider == nil {
		proxyProvider = noop
	}
	if ipStackProvider == nil {
		ipStackProvider = noop
	}
	return &ClientFactory{proxyProvider: proxyProvider, ipStackProvider: ipStackProvider}
}

// NewClientFactoryForTest returns a factory that always hands out client.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	noop := &noopProvider{}
	return &ClientFactory{proxyProvider: noop, ipStackProvider: noop, testHTTPClient: client}
}

type noopProvider struct{}

func (p *noopProvider) GetProxyURL(ctx context.Context) string { return "" }

func (p *noopProvider) GetIPStack(ctx context.Context) string { return IPStackDefault }

func (f *ClientFactory) NewHTTPClient(ctx context.Context, timeout time.Duration) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: f.NewHTTPTransport(ctx),
	}
}

// NewHTTPTransport returns a transport with proxy and IP stack applied.
// HTTP(S) proxies go through Transport.Proxy; SOCKS5 proxies replace the
// dialer, so Proxy stays nil for them. An unparsable proxy URL is ignored.
func (f *ClientFactory) NewHTTPTransport(ctx context.Context) *http.Transport {
	ipStack := f.ipStackProvider.GetIPStack(ctx)
	transport := &http.Transport{
		DialContext:         f.makeDialFunc(ipStack),
		TLSHandshakeTimeout: dialTimeout,
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
	}

	proxyURL := strings.TrimSpace(f.proxyProvider.GetProxyURL(ctx))
	if proxyURL == "" {
		return transport
	}
	parsed, err := url.Parse(proxyURL)
	if err != nil || parsed.Host == "" {
		return transport
	}

	switch parsed.Scheme {
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if parsed.User != nil {
			password, _ := parsed.User.Password()
			auth = &proxy.Auth{User: parsed.User.Username(), Password: password}
		}
		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, &ipStackDialer{ipStack: ipStack})
		if err != nil {
			return transport
		}
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		}
	default:
		transport.Proxy = http.ProxyURL(parsed)
	}
	return transport
}

// TestProxyWithConfig checks proxyURL without saving it.
func (f *ClientFactory) TestProxyWithConfig(ctx context.Context, proxyURL, testURL string) error {
	tmp := &ClientFactory{
		proxyProvider:   staticProxy(proxyURL),
		ipStackProvider: f.ipStackProvider,
	}
	return probe(ctx, tmp.NewHTTPClient(ctx, dialTimeout), testURL)
}

type staticProxy string

func (s staticProxy) GetProxyURL(ctx context.Context) string { return string(s) }

func probe(ctx context.Context, client *http.Client, testURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, testURL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}

// ExtractHost returns host[:port] of rawURL, or "" when it has none.
func ExtractHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}

func (f *ClientFactory) makeDialFunc(ipStack string) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialWithIPStack(ctx, network, addr, ipStack)
	}
}

func dialWithIPStack(ctx context.Context, network, addr, ipStack string) (net.Conn, error) {
	switch ipStack {
	case IPStackIPv4:
		return dialWithPreference(ctx, addr, "tcp4", "tcp6")
	case IPStackIPv6:
		return dialWithPreference(ctx, addr, "tcp6", "tcp4")
	default:
		d := &net.Dialer{Timeout: dialTimeout}
		return d.DialContext(ctx, network, addr)
	}
}

// dialWithPreference tries primary first and falls back to the other family.
func dialWithPreference(ctx context.Context, addr, primary, fallback string) (net.Conn, error) {
	d := &net.Dialer{Timeout: dialTimeout}
	conn, err := d.DialContext(ctx, primary, addr)
	if err == nil {
		return conn, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	conn, fbErr := d.DialContext(ctx, fallback, addr)
	if fbErr != nil {
		return nil, errors.Join(err, fbErr)
	}
	return conn, nil
}

// ipStackDialer is the forward dialer handed to the SOCKS5 client.
type ipStackDialer struct {
	ipStack string
}

func (d *ipStackDialer) Dial(network, addr string) (net.Conn, error) {
	return dialWithIPStack(context.Background(), network, addr, d.ipStack)
}

func (d *ipStackDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return dialWithIPStack(ctx, network, addr, d.ipStack)
}
