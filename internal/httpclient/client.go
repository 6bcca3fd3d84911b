package httpclient

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"sync"
)

// Request represents one outbound HTTP exchange. Method goes onto the wire
// as given, even when a body is present on a GET.
type Request struct {
	Method    string
	URL       string
	Headers   map[string]string
	Body      []byte
	Username  string
	Password  string
	TLSVerify bool
}

// Response represents an HTTP response. Status classification is the
// caller's job; every completed exchange produces a Response regardless of
// status code.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// Client interface for making HTTP requests. Tests substitute a recording
// implementation.
type Client interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// DefaultClient implements the Client interface on net/http. It keeps two
// underlying clients, one with TLS peer verification and one without, built
// lazily so the per-request TLSVerify flag costs nothing to flip. Neither
// sets a timeout; callers wanting one supply a context deadline or their own
// Client.
type DefaultClient struct {
	mu       sync.Mutex
	verified *http.Client
	insecure *http.Client
}

// NewDefaultClient creates a new DefaultClient
func NewDefaultClient() *DefaultClient {
	return &DefaultClient{}
}

func (c *DefaultClient) httpClient(tlsVerify bool) *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tlsVerify {
		if c.verified == nil {
			c.verified = &http.Client{}
		}
		return c.verified
	}

	if c.insecure == nil {
		c.insecure = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}
	return c.insecure
}

// Send makes an HTTP request and returns the response. Transport errors are
// returned as-is so the caller can classify them. Response bodies compressed
// with gzip or deflate are decompressed before return: setting
// Accept-Encoding explicitly disables net/http's automatic gzip handling, so
// both encodings are handled here.
func (c *DefaultClient) Send(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	httpReq.ContentLength = int64(len(req.Body))

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.SetBasicAuth(req.Username, req.Password)

	resp, err := c.httpClient(req.TLSVerify).Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := decodeBody(resp.Header.Get("Content-Encoding"), resp.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string)
	for k, v := range resp.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Headers:    headers,
	}, nil
}

func decodeBody(encoding string, r io.Reader) ([]byte, error) {
	switch encoding {
	case "gzip":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		return io.ReadAll(gr)
	case "deflate":
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		// Deflate on the wire means zlib-wrapped, but some servers send a
		// bare deflate stream; try both, like curl.
		if zr, err := zlib.NewReader(bytes.NewReader(raw)); err == nil {
			defer zr.Close()
			return io.ReadAll(zr)
		}
		fr := flate.NewReader(bytes.NewReader(raw))
		defer fr.Close()
		return io.ReadAll(fr)
	default:
		return io.ReadAll(r)
	}
}
