package httpclient

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWireBehavior(t *testing.T) {
	var (
		gotMethod  string
		gotBody    []byte
		gotUser    string
		gotPass    string
		gotHeaders http.Header
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		gotUser, gotPass, _ = r.BasicAuth()
		gotHeaders = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewDefaultClient()
	resp, err := client.Send(context.Background(), &Request{
		// GET with a body: the method is forced independently of the body.
		Method: http.MethodGet,
		URL:    server.URL + "/rest/sales/status",
		Headers: map[string]string{
			"Content-type":    "application/json",
			"Accept-Encoding": "gzip, deflate",
		},
		Body:      []byte(`{"id_sale": 1}`),
		Username:  "merchant",
		Password:  "s3cret",
		TLSVerify: true,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []byte(`{"success": true}`), resp.Body)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, []byte(`{"id_sale": 1}`), gotBody)
	assert.Equal(t, "merchant", gotUser)
	assert.Equal(t, "s3cret", gotPass)
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "gzip, deflate", gotHeaders.Get("Accept-Encoding"))
}

func TestSendReturnsErrorStatusesAsResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream broken"))
	}))
	defer server.Close()

	client := NewDefaultClient()
	resp, err := client.Send(context.Background(), &Request{
		Method:    http.MethodPost,
		URL:       server.URL,
		TLSVerify: true,
	})

	require.NoError(t, err, "status classification is the caller's job")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, []byte("upstream broken"), resp.Body)
}

func TestSendDecompressesResponses(t *testing.T) {
	payload := []byte(`{"success": true, "data": [{"bank_name": "ING", "bank_code": "INGBNL2A"}]}`)

	encode := map[string]func([]byte) []byte{
		"gzip": func(b []byte) []byte {
			var buf bytes.Buffer
			gw := gzip.NewWriter(&buf)
			gw.Write(b)
			gw.Close()
			return buf.Bytes()
		},
		"deflate": func(b []byte) []byte {
			var buf bytes.Buffer
			zw := zlib.NewWriter(&buf)
			zw.Write(b)
			zw.Close()
			return buf.Bytes()
		},
	}

	for encoding, enc := range encode {
		t.Run(encoding, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", encoding)
				w.Write(enc(payload))
			}))
			defer server.Close()

			client := NewDefaultClient()
			resp, err := client.Send(context.Background(), &Request{
				Method:    http.MethodGet,
				URL:       server.URL,
				Headers:   map[string]string{"Accept-Encoding": "gzip, deflate"},
				TLSVerify: true,
			})

			require.NoError(t, err)
			assert.Equal(t, payload, resp.Body)
		})
	}
}

func TestSendRawDeflateFallback(t *testing.T) {
	payload := []byte(`{"success": true}`)

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	fw.Write(payload)
	fw.Close()
	raw := buf.Bytes()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "deflate")
		w.Write(raw)
	}))
	defer server.Close()

	client := NewDefaultClient()
	resp, err := client.Send(context.Background(), &Request{
		Method:    http.MethodGet,
		URL:       server.URL,
		TLSVerify: true,
	})

	require.NoError(t, err)
	assert.Equal(t, payload, resp.Body)
}

func TestSendTLSVerifyToggle(t *testing.T) {
	// httptest's TLS server uses a self-signed certificate, so a verifying
	// client must fail and a non-verifying one must succeed.
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewDefaultClient()

	_, err := client.Send(context.Background(), &Request{
		Method:    http.MethodPost,
		URL:       server.URL,
		TLSVerify: true,
	})
	require.Error(t, err)

	resp, err := client.Send(context.Background(), &Request{
		Method:    http.MethodPost,
		URL:       server.URL,
		TLSVerify: false,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"success": true}`), resp.Body)
}

func TestSendConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewDefaultClient()
	resp, err := client.Send(context.Background(), &Request{
		Method:    http.MethodPost,
		URL:       url,
		TLSVerify: true,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
}
