package paylane

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorPredicatesDoNotCrossMatch(t *testing.T) {
	validationErr := newValidationError("PATCH")
	connErr := newConnectionError(ConnCodeFailed, errors.New("connection refused"))
	httpErr := newHTTPError(503, "503 Service Unavailable")
	decodeErr := newDecodeError(errors.New("invalid character '<'"), []byte("<html>"))

	assert.True(t, IsValidationError(validationErr))
	assert.False(t, IsConnectionError(validationErr))
	assert.False(t, IsHTTPError(validationErr))
	assert.False(t, IsDecodeError(validationErr))

	assert.True(t, IsConnectionError(connErr))
	assert.False(t, IsValidationError(connErr))

	assert.True(t, IsHTTPError(httpErr))
	assert.False(t, IsConnectionError(httpErr))

	assert.True(t, IsDecodeError(decodeErr))
	assert.False(t, IsHTTPError(decodeErr))
}

func TestTypedErrorsSurviveMarking(t *testing.T) {
	native := errors.New("tls: failed to verify certificate")
	err := newConnectionError(ConnCodeTLSVerification, native)

	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, ConnCodeTLSVerification, connErr.Code)
	assert.Equal(t, native.Error(), connErr.Message)
	assert.ErrorIs(t, err, native)

	httpErr := newHTTPError(400, "400 Bad Request")
	var target *HTTPError
	require.True(t, errors.As(httpErr, &target))
	assert.Equal(t, 400, target.StatusCode)
	assert.EqualError(t, target, "http error: 400 Bad Request")
}

func TestHTTPStatusPhraseTable(t *testing.T) {
	want := map[int]string{
		400: "400 Bad Request",
		401: "401 Unauthorized",
		500: "500 Internal Server Error",
		501: "501 Not Implemented",
		502: "502 Bad Gateway",
		503: "503 Service Unavailable",
		504: "504 Gateway Timeout",
	}
	assert.Equal(t, want, httpStatusPhrases)
}
