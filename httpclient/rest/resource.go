package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/vscentrum/restkit/httpclient"
	"github.com/vscentrum/restkit/util"
)

// Verbs is the fixed set of HTTP methods that terminate a chain.
var Verbs = []string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
}

// Resource is an in-progress, not-yet-dispatched resource reference.
// It accumulates path segments until a verb terminates the chain. A
// Resource is single-use and must be driven by one caller at a time.
type Resource struct {
	client *httpclient.Client
	path   string
}

// Seg appends the given segments to the accumulated path, separated by
// slashes, and returns the same resource for further chaining. Segment
// content is not escaped or validated; malformed paths are the caller's
// responsibility.
func (r *Resource) Seg(segments ...string) *Resource {
	for _, s := range segments {
		r.path += "/" + s
	}
	return r
}

// Segf appends a single formatted segment.
func (r *Resource) Segf(format string, args ...any) *Resource {
	return r.Seg(fmt.Sprintf(format, args...))
}

// Path returns the accumulated relative path.
func (r *Resource) Path() string {
	return r.path
}

// String identifies a chain that was never terminated with a verb.
func (r *Resource) String() string {
	return fmt.Sprintf("unresolved resource %q: terminate the chain with a verb such as Get", r.path)
}

// Access is the tagged result of a name-driven chain step: exactly one
// of Resource (the continuation) or Verb (a bound invocation) is set.
type Access struct {
	Resource *Resource
	Verb     *Bound
}

// Access resolves a single chained name. A name that matches one of the
// six verbs case-insensitively AND contains at least one lowercase
// letter binds the accumulated path and returns a dispatchable Bound.
// Any other name (including all-uppercase or numeric verb lookalikes,
// which remain legitimate path segments) is appended to the path.
func (r *Resource) Access(name string) Access {
	if isVerbName(name) {
		return Access{Verb: &Bound{resource: r, method: strings.ToUpper(name)}}
	}
	return Access{Resource: r.Seg(name)}
}

// Dispatch terminates the chain with an explicit verb, looked up
// case-insensitively against the fixed verb set. Only DELETE, PATCH,
// POST and PUT accept a body.
func (r *Resource) Dispatch(ctx context.Context, verb string, body any, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	method := strings.ToUpper(verb)
	if !util.Contains(Verbs, method) {
		return nil, fmt.Errorf("rest: unknown verb %q (known verbs: %v)", verb, Verbs)
	}
	switch method {
	case http.MethodGet, http.MethodHead:
		if body != nil {
			return nil, fmt.Errorf("rest: verb %s takes no body", method)
		}
		if method == http.MethodGet {
			return r.Get(ctx, opts...)
		}
		return r.Head(ctx, opts...)
	case http.MethodDelete:
		return r.Delete(ctx, body, opts...)
	case http.MethodPost:
		return r.Post(ctx, body, opts...)
	case http.MethodPut:
		return r.Put(ctx, body, opts...)
	default:
		return r.Patch(ctx, body, opts...)
	}
}

// Get terminates the chain with a GET request.
func (r *Resource) Get(ctx context.Context, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return r.client.Get(ctx, r.path, opts...)
}

// Head terminates the chain with a HEAD request.
func (r *Resource) Head(ctx context.Context, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return r.client.Head(ctx, r.path, opts...)
}

// Delete terminates the chain with a DELETE request.
func (r *Resource) Delete(ctx context.Context, body any, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return r.client.Delete(ctx, r.path, body, opts...)
}

// Post terminates the chain with a POST request.
func (r *Resource) Post(ctx context.Context, body any, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return r.client.Post(ctx, r.path, body, opts...)
}

// Put terminates the chain with a PUT request.
func (r *Resource) Put(ctx context.Context, body any, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return r.client.Put(ctx, r.path, body, opts...)
}

// Patch terminates the chain with a PATCH request.
func (r *Resource) Patch(ctx context.Context, body any, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return r.client.Patch(ctx, r.path, body, opts...)
}

// Bound is a verb invocation bound to an accumulated path, produced by
// Access when a chained name matches a verb.
type Bound struct {
	resource *Resource
	method   string
}

// Method returns the bound HTTP method.
func (b *Bound) Method() string {
	return b.method
}

// Call dispatches the bound verb against the accumulated path.
func (b *Bound) Call(ctx context.Context, body any, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return b.resource.Dispatch(ctx, b.method, body, opts...)
}

// isVerbName reports whether a chained name should dispatch rather than
// extend the path. The name must match a verb case-insensitively and
// contain at least one lowercase letter: a fully non-lowercase name
// (e.g. "GET" or "1234") stays a literal path segment, so resources
// whose names collide with verbs remain addressable.
func isVerbName(name string) bool {
	if !util.Contains(Verbs, strings.ToUpper(name)) {
		return false
	}
	return strings.ContainsFunc(name, unicode.IsLower)
}
