package anticaptcha

import (
	"log/slog"
	"strings"
	"time"
)

// DefaultAPIURL is the production Anti-Captcha endpoint.
const DefaultAPIURL = "https://api.anti-captcha.com"

const (
	defaultDelay       = 2 * time.Second
	defaultHTTPTimeout = 30 * time.Second

	// firstPollCeiling caps the wait between task creation and the first poll.
	firstPollCeiling = 2 * time.Second
)

// Request outcomes reported to MetricsHook.
const (
	OutcomeOK             = "ok"
	OutcomeAPIError       = "api_error"
	OutcomeTransportError = "transport_error"
)

// ClientConfig holds all configuration for the Anti-Captcha client.
type ClientConfig struct {
	// SoftID is the developer application id from the Developer Center.
	// Sent with every createTask call when non-zero.
	SoftID int

	// Verbose enables diagnostic logging of the solve loop.
	Verbose bool

	// VerboseIdentifier tags every verbose log line, useful when several
	// clients share one process.
	VerboseIdentifier string

	// APIURL overrides the API base URL.
	// Default: https://api.anti-captcha.com
	APIURL string

	// Delay is the interval between getTaskResult polls.
	// Default: 2s
	Delay time.Duration

	// CallbackURL is the default callback address for created tasks.
	// The API POSTs the getTaskResult payload there once the task is done.
	CallbackURL string

	// Transport performs the HTTP exchange. Default: HTTPTransport.
	Transport Transport

	// HTTPTimeout is the per-request timeout of the default transport.
	HTTPTimeout time.Duration

	// Logger receives verbose and warning output. Default: slog.Default().
	Logger *slog.Logger

	// MetricsHook is called once per API request for external metrics collection.
	// endpoint is the API path, outcome is one of the Outcome* constants.
	MetricsHook func(endpoint, outcome string, elapsed time.Duration)
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *ClientConfig) defaults() {
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Delay <= 0 {
		cfg.Delay = defaultDelay
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.Transport == nil {
		cfg.Transport = NewHTTPTransport(cfg.HTTPTimeout)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
}

// firstPollDelay is the wait before the first poll: the configured delay,
// but never longer than firstPollCeiling.
func (cfg *ClientConfig) firstPollDelay() time.Duration {
	return min(cfg.Delay, firstPollCeiling)
}
