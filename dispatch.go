package paylane

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"net"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"

	"github.com/amodliszewski/paylane-go/internal/httpclient"
)

var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// call is the shared dispatch pipeline every operation funnels through:
// validate the verb, serialize the payload, perform one blocking exchange,
// classify the outcome and decode the body. No retries, no fallback
// endpoint; all three error kinds are terminal.
func (c *Client) call(ctx context.Context, op operation, params Params) (Response, error) {
	c.success.Store(false)

	if !lo.Contains(allowedMethods, op.method) {
		return nil, newValidationError(op.method)
	}

	if params == nil {
		params = Params{}
	}
	// Marshal failures propagate unwrapped; the payload is caller-owned.
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	reqID := "req_" + ulid.Make().String()
	req := &httpclient.Request{
		Method: op.method,
		URL:    c.baseURL + op.path,
		Headers: map[string]string{
			"Content-type":    "application/json",
			"Accept-Encoding": "gzip, deflate",
		},
		Body:      body,
		Username:  c.username,
		Password:  c.password,
		TLSVerify: c.tlsVerify.Load(),
	}

	c.logger.Debugw("paylane request",
		"request_id", reqID,
		"operation", op.name,
		"method", op.method,
		"endpoint", op.path)

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		code := classifyTransportError(err)
		c.logger.Errorw("paylane request failed",
			"request_id", reqID,
			"operation", op.name,
			"code", code,
			"error", err)
		return nil, newConnectionError(code, err)
	}

	if phrase, ok := httpStatusPhrases[resp.StatusCode]; ok {
		c.logger.Errorw("paylane request rejected",
			"request_id", reqID,
			"operation", op.name,
			"status", resp.StatusCode)
		return nil, newHTTPError(resp.StatusCode, phrase)
	}

	var decoded Response
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		if c.strict {
			return nil, newDecodeError(err, resp.Body)
		}
		c.logger.Debugw("paylane response body not decodable",
			"request_id", reqID,
			"operation", op.name,
			"status", resp.StatusCode)
		return nil, nil
	}

	if decoded.Success() {
		c.success.Store(true)
	}

	c.logger.Debugw("paylane response",
		"request_id", reqID,
		"operation", op.name,
		"status", resp.StatusCode,
		"success", decoded.Success())

	return decoded, nil
}

// classifyTransportError maps a native transport failure onto a stable
// ConnectionError code. The native error is kept in the chain regardless.
func classifyTransportError(err error) string {
	var (
		dnsErr      *net.DNSError
		certErr     *tls.CertificateVerificationError
		unknownAuth x509.UnknownAuthorityError
		hostnameErr x509.HostnameError
		netErr      net.Error
	)

	switch {
	case errors.Is(err, context.Canceled):
		return ConnCodeCanceled
	case errors.As(err, &certErr),
		errors.As(err, &unknownAuth),
		errors.As(err, &hostnameErr):
		return ConnCodeTLSVerification
	case errors.As(err, &dnsErr):
		return ConnCodeDNSLookupFailed
	case errors.Is(err, context.DeadlineExceeded):
		return ConnCodeTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return ConnCodeTimeout
	default:
		return ConnCodeFailed
	}
}
