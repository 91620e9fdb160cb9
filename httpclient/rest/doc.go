// Package rest provides a chainable resource builder over httpclient.
//
// A Resource accumulates URL path segments and is terminated by one of
// the six HTTP verbs, which dispatches the request:
//
//	client, _ := rest.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Token:   "abc",
//	})
//
//	resp, err := client.Resource("repos", org, name, "issues").
//	    Get(ctx, httpclient.WithQueryParam("state", "open"))
//
// Each Resource is single-use: it belongs to one chain and must not be
// shared between goroutines. The underlying client may be reused freely.
//
// Access offers a name-driven alternative for callers that resolve
// segments and verbs dynamically (e.g. when driving the client from
// data): a name matching an HTTP verb terminates the chain, anything
// else grows the path.
package rest
