// Package paylane is a thin client for the PayLane payment-processing REST
// API: card sales and authorizations, refunds, 3-D Secure checks and the
// alternative payment methods (PayPal, iDEAL, SOFORT, direct debit, bank
// transfer, Apple Pay). Every operation funnels through one dispatch
// pipeline; see the Client method docs for the per-operation surface.
package paylane

import (
	"sync/atomic"

	"github.com/amodliszewski/paylane-go/internal/httpclient"
	"github.com/amodliszewski/paylane-go/logger"
)

// DirectBaseURL is the production PayLane endpoint used when no override is
// given. Operation paths are appended to it verbatim.
const DirectBaseURL = "https://direct.paylane.com/rest/"

// Params is the request payload for an operation. Keys and values pass
// through to the gateway as-is; the client performs no schema validation.
type Params map[string]any

// Client talks to the PayLane REST gateway. A zero-value Client is not
// usable; construct with New or FromEnv. One instance may be reused for any
// number of sequential calls. See IsSuccess for the concurrency caveat on
// the per-instance success flag.
type Client struct {
	username string
	password string
	baseURL  string
	strict   bool

	tlsVerify atomic.Bool
	success   atomic.Bool

	transport httpclient.Client
	logger    *logger.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the gateway endpoint. The URL is used verbatim: no
// slash normalization happens when operation paths are appended, so it
// should end with a slash.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithTransport substitutes the HTTP transport. Useful for tests and for
// callers that need a timeout, which the default transport does not set.
func WithTransport(t httpclient.Client) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger injects a logger; the default is silent.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTLSVerify sets the initial TLS peer verification state, true by
// default. See also SetTLSVerify.
func WithTLSVerify(enabled bool) Option {
	return func(c *Client) { c.tlsVerify.Store(enabled) }
}

// WithStrictDecoding makes a malformed JSON body on a non-error status a
// DecodeError. The default mirrors the gateway's historical client
// behavior: the malformed body is swallowed and the call returns a nil
// response with a nil error.
func WithStrictDecoding() Option {
	return func(c *Client) { c.strict = true }
}

// New builds a client for the given API credentials. No network I/O happens
// and the credentials are not validated until the first call.
func New(username, password string, opts ...Option) *Client {
	c := &Client{
		username:  username,
		password:  password,
		baseURL:   DirectBaseURL,
		transport: httpclient.NewDefaultClient(),
		logger:    logger.NewNop(),
	}
	c.tlsVerify.Store(true)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromEnv builds a client from the PAYLANE_* environment and an optional
// paylane.yaml in the working directory; see LoadConfig. Options are
// applied after the configuration, so they win.
func FromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Client(opts...), nil
}

// SetTLSVerify toggles TLS peer certificate verification for subsequent
// calls. Pure mutation, no I/O.
func (c *Client) SetTLSVerify(enabled bool) {
	c.tlsVerify.Store(enabled)
}

// BaseURL returns the configured gateway endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsSuccess reports whether the most recently completed call on this client
// returned an application-level success ("success": true in the decoded
// body). The flag is reset at the start of every call, so under concurrent
// use it is last-call-wins; prefer Response.Success on the per-call result,
// which has no such hazard.
func (c *Client) IsSuccess() bool {
	return c.success.Load()
}
