package anticaptcha

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
)

// Transport sends one JSON POST to the API and returns the raw response body.
// Implementations must return an error for network failures and non-2xx responses.
type Transport interface {
	Post(ctx context.Context, url string, body []byte) ([]byte, error)
}

// HTTPTransport implements Transport with net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates an HTTPTransport with the given request timeout.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{client: &http.Client{Timeout: timeout}}
}

// NewHTTPTransportWithClient wraps an existing http.Client.
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{client: client}
}

// Post implements Transport.
func (t *HTTPTransport) Post(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range apiHeaders() {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(resp.StatusCode, data)
	}
	return data, nil
}

// StealthTransport implements Transport on top of a go-stealth BrowserClient,
// presenting a browser TLS fingerprint and header order.
type StealthTransport struct {
	client    *stealth.BrowserClient
	userAgent string
	proxy     string
}

// ErrProxyUnreachable wraps StealthTransport failures caused by the proxy
// rather than the API.
var ErrProxyUnreachable = errors.New("anticaptcha: proxy unreachable")

// NewStealthTransport creates a StealthTransport. proxyURL may be empty.
func NewStealthTransport(proxyURL string) (*StealthTransport, error) {
	profile := stealth.BuiltinProfiles[0]
	opts := []stealth.ClientOption{
		stealth.WithProfile(profile.TLSProfile),
		stealth.WithHeaderOrder(apiHeaderOrder),
	}
	if proxyURL != "" {
		opts = append(opts, stealth.WithProxy(proxyURL))
	}
	bc, err := stealth.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("stealth client: %w", err)
	}
	return &StealthTransport{client: bc, userAgent: profile.UserAgent, proxy: proxyURL}, nil
}

// Post implements Transport. BrowserClient has no context support, so
// cancellation is only observed before the request starts.
func (t *StealthTransport) Post(ctx context.Context, url string, body []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, _, status, err := t.client.DoWithHeaderOrder(http.MethodPost, url,
		browserHeaders(t.userAgent), bytes.NewReader(body), apiHeaderOrder)
	if err != nil {
		if t.proxy != "" && isProxyError(err) {
			return nil, fmt.Errorf("%w (%s): %v", ErrProxyUnreachable, stealth.MaskProxy(t.proxy), err)
		}
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, newHTTPError(status, data)
	}
	return data, nil
}

// isProxyError returns true if the error looks like a proxy connectivity failure.
func isProxyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "proxy") ||
		strings.Contains(msg, "SOCKS") ||
		strings.Contains(msg, "tunnel") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host")
}
