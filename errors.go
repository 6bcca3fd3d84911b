package paylane

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for errors.Is checks. Every error returned by the client
// is marked with exactly one of these; the typed errors below remain
// reachable through errors.As.
var (
	ErrValidation = errors.New("validation error")
	ErrConnection = errors.New("connection error")
	ErrHTTP       = errors.New("http error")
	ErrDecode     = errors.New("decode error")
)

// Transport failure classifications carried on ConnectionError.Code.
const (
	ConnCodeTimeout         = "timeout"
	ConnCodeDNSLookupFailed = "dns_lookup_failed"
	ConnCodeTLSVerification = "tls_verification_failed"
	ConnCodeCanceled        = "canceled"
	ConnCodeFailed          = "connection_failed"
)

// ValidationError is returned when an operation requests an unsupported
// HTTP method. It is raised before any network activity.
type ValidationError struct {
	Method string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request method not supported: %s", e.Method)
}

func newValidationError(method string) error {
	return errors.Mark(&ValidationError{Method: method}, ErrValidation)
}

// ConnectionError is returned when the transport failed to complete the
// exchange. Code is a stable classification of the native failure; the
// native error stays available via Unwrap.
type ConnectionError struct {
	Code    string
	Message string
	err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error [%s]: %s", e.Code, e.Message)
}

func (e *ConnectionError) Unwrap() error {
	return e.err
}

func newConnectionError(code string, err error) error {
	return errors.Mark(&ConnectionError{Code: code, Message: err.Error(), err: err}, ErrConnection)
}

// HTTPError is returned when the exchange completed with one of the
// recognized error status codes. The response body is discarded.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s", e.Status)
}

func newHTTPError(statusCode int, status string) error {
	return errors.Mark(&HTTPError{StatusCode: statusCode, Status: status}, ErrHTTP)
}

// DecodeError is returned under WithStrictDecoding when a non-error
// response body is not valid JSON. Body holds the raw bytes.
type DecodeError struct {
	Body []byte
	err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %s", e.err)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}

func newDecodeError(err error, body []byte) error {
	return errors.Mark(&DecodeError{Body: body, err: err}, ErrDecode)
}

// httpStatusPhrases maps the status codes the gateway treats as terminal
// failures onto their canned phrases. Any code outside this table, 2xx or
// not, gets its body decoded instead.
var httpStatusPhrases = map[int]string{
	400: "400 Bad Request",
	401: "401 Unauthorized",
	500: "500 Internal Server Error",
	501: "501 Not Implemented",
	502: "502 Bad Gateway",
	503: "503 Service Unavailable",
	504: "504 Gateway Timeout",
}

// IsValidationError checks if an error is a verb validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsConnectionError checks if an error is a transport failure
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsHTTPError checks if an error is a recognized gateway status error
func IsHTTPError(err error) bool {
	return errors.Is(err, ErrHTTP)
}

// IsDecodeError checks if an error is a strict-mode decode failure
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}
