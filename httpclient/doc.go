// Package httpclient provides a JSON REST client with basic and token
// authentication, secret censoring for logs, and automatic response
// decoding.
//
// The Client owns a connection configuration (base URL, credentials,
// user agent, trailing-slash policy) that is immutable after New and may
// be shared between goroutines. Every call opens its own connection and
// blocks until the response has been read; there is no pooling, caching,
// retry, or internal timeout. Callers needing deadlines wrap the context.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Token:   "abc",
//	})
//
//	resp, err := client.Get(ctx, "repos/org/name/issues",
//	    httpclient.WithQueryParam("state", "open"))
//	// resp.StatusCode, resp.Body (decoded JSON or raw text)
//
// The rest subpackage adds a chainable resource builder on top.
package httpclient
