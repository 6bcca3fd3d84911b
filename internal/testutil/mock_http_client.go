package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/amodliszewski/paylane-go/internal/httpclient"
)

// RecordingClient implements a mock HTTP client for testing. It records
// every outgoing request and replays queued results in FIFO order; with an
// empty queue it answers 200 with an empty JSON object.
type RecordingClient struct {
	mu       sync.Mutex
	requests []*httpclient.Request
	queue    []result
}

type result struct {
	resp *httpclient.Response
	err  error
}

// NewRecordingClient creates a new RecordingClient
func NewRecordingClient() *RecordingClient {
	return &RecordingClient{}
}

// EnqueueResponse queues a response for the next Send call.
func (c *RecordingClient) EnqueueResponse(statusCode int, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = append(c.queue, result{
		resp: &httpclient.Response{
			StatusCode: statusCode,
			Body:       body,
			Headers:    map[string]string{},
		},
	})
}

// EnqueueError queues a transport-level failure for the next Send call.
func (c *RecordingClient) EnqueueError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = append(c.queue, result{err: err})
}

// Send implements the httpclient.Client interface
func (c *RecordingClient) Send(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = append(c.requests, req)

	if len(c.queue) == 0 {
		return &httpclient.Response{
			StatusCode: http.StatusOK,
			Body:       []byte("{}"),
			Headers:    map[string]string{},
		}, nil
	}

	r := c.queue[0]
	c.queue = c.queue[1:]
	return r.resp, r.err
}

// Requests returns the recorded requests in send order.
func (c *RecordingClient) Requests() []*httpclient.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*httpclient.Request(nil), c.requests...)
}

// LastRequest returns the most recently recorded request, or nil.
func (c *RecordingClient) LastRequest() *httpclient.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		return nil
	}
	return c.requests[len(c.requests)-1]
}

// CallCount returns how many times Send was invoked.
func (c *RecordingClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// Clear removes all recorded requests and queued results.
func (c *RecordingClient) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = nil
	c.queue = nil
}
