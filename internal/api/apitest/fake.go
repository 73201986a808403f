// Package apitest provides an in-memory api.Client for tests.
package apitest

import (
	"context"
	"sync"

	"octofit/internal/api"
	"octofit/internal/record"
	"octofit/internal/resource"
)

// Client serves canned collections keyed by resource name. A resource with
// an entry in Errors fails with that error. Unknown resources return an
// empty collection.
type Client struct {
	URL     string
	Bodies  map[string]string
	Errors  map[string]error
	mu      sync.Mutex
	calls   map[string]int
	blockCh chan struct{}
}

var _ api.Client = (*Client)(nil)

// New creates a Client rooted at a fixed fake URL.
func New() *Client {
	return &Client{
		URL:    "http://octofit.test",
		Bodies: map[string]string{},
		Errors: map[string]error{},
		calls:  map[string]int{},
	}
}

// WithBody registers the raw JSON response body for a resource.
func (c *Client) WithBody(name, body string) *Client {
	c.Bodies[name] = body
	return c
}

// WithError makes every fetch of name fail with err.
func (c *Client) WithError(name string, err error) *Client {
	c.Errors[name] = err
	return c
}

// Block makes FetchCollection wait until Release is called or ctx is done.
func (c *Client) Block() *Client {
	c.blockCh = make(chan struct{})
	return c
}

// Release unblocks pending fetches.
func (c *Client) Release() {
	if c.blockCh != nil {
		close(c.blockCh)
	}
}

// Calls reports how many times name was fetched.
func (c *Client) Calls(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[name]
}

func (c *Client) FetchCollection(ctx context.Context, def resource.Definition) ([]record.Record, error) {
	c.mu.Lock()
	c.calls[def.Name]++
	block := c.blockCh
	c.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := c.Errors[def.Name]; ok {
		return nil, err
	}
	body, ok := c.Bodies[def.Name]
	if !ok {
		return nil, nil
	}
	return record.ParseCollection([]byte(body))
}

func (c *Client) Endpoint(def resource.Definition) string { return def.Endpoint(c.URL) }

func (c *Client) BaseURL() string { return c.URL }
