// Browser-fingerprinted transport for endpoints that reject vanilla Go clients.
//
// The Play Store serves a stripped page (or an interstitial) to clients whose
// TLS Client Hello does not look like a real browser. This transport leverages
// refraction-networking/utls to present Chrome's fingerprint, attempting an
// HTTP/2 connection first and transparently falling back to HTTP/1.1 when the
// server does not negotiate h2.
package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// Browser is the HTTP client used for page scraping. It shares the same
// timeout bound as Client but routes through the fingerprinted transport.
var Browser = &http.Client{
	Timeout:   Timeout,
	Transport: &browserTransport{},
}

// browserTransport routes requests through an h2 transport with a uTLS dialer,
// retrying once over HTTP/1.1 when the h2 handshake is refused.
type browserTransport struct{}

var h2Transport = &http2.Transport{
	DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
		return dialTLS(ctx, network, addr, nil)
	},
}

var h1Transport = &http.Transport{
	DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialTLS(ctx, network, addr, []string{"http/1.1"})
	},
}

func (browserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	setBrowserHeaders(req.Header)

	resp, err := h2Transport.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// GET requests carry no body, so the request can be replayed as-is.
	resp, h1Err := h1Transport.RoundTrip(req)
	if h1Err != nil {
		return nil, fmt.Errorf("h2: %v; http/1.1 fallback: %w", err, h1Err)
	}
	return resp, nil
}

// setBrowserHeaders fills in the headers a real browser would send, without
// clobbering anything the caller set explicitly.
func setBrowserHeaders(h http.Header) {
	defaults := map[string]string{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
	}
	for k, v := range defaults {
		if h.Get(k) == "" {
			h.Set(k, v)
		}
	}
}

// dialTLS creates a TLS connection mimicking Chrome's fingerprint.
// A nil protos slice advertises both h2 and http/1.1, matching natural Chrome behavior.
func dialTLS(ctx context.Context, netw, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: Timeout}
	conn, err := dialer.DialContext(ctx, netw, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
