package rest

import (
	"github.com/vscentrum/restkit/httpclient"
)

// Client is the entry point for chained resource requests. It is
// stateless beyond holding the configured transport client; every
// Resource call starts a fresh chain.
type Client struct {
	http *httpclient.Client
}

// New creates a REST client from the given connection configuration.
func New(cfg httpclient.Config) (*Client, error) {
	c, err := httpclient.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

// NewFromClient creates a REST client from an existing transport client.
func NewFromClient(c *httpclient.Client) *Client {
	return &Client{http: c}
}

// HTTP returns the underlying transport client.
func (c *Client) HTTP() *httpclient.Client {
	return c.http
}

// Resource starts a new chain, optionally seeded with path segments.
func (c *Client) Resource(segments ...string) *Resource {
	r := &Resource{client: c.http}
	return r.Seg(segments...)
}
