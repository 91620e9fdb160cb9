package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/vscentrum/restkit/logger"
)

// Client executes REST requests against a single base URL. It is
// immutable after New and safe for concurrent use.
type Client struct {
	config     Config
	authHeader string
	httpClient *http.Client
	log        *logger.Logger
}

// Response is the result of a request. Body holds the JSON-decoded
// response when the content parses as JSON, the raw text otherwise, and
// the response header map for HEAD requests.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       any
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// New creates a Client from the given configuration. It fails with a
// *ConfigError when the base URL is missing or the credential invariant
// is violated (username without password or token, or both at once).
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config:     cfg,
		authHeader: cfg.authorizationHeader(),
		httpClient: &http.Client{},
		log:        logger.WithComponent("httpclient"),
	}, nil
}

// Config returns a copy of the connection configuration.
func (c *Client) Config() Config {
	return c.config
}

// requestOptions collects per-request headers and query parameters.
type requestOptions struct {
	headers map[string]string
	query   url.Values
}

// RequestOption configures a single request.
type RequestOption func(*requestOptions)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers[key] = value
	}
}

// WithHeaders adds all given headers to the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *requestOptions) {
		for k, v := range headers {
			o.headers[k] = v
		}
	}
}

// WithQueryParam adds a query parameter to the request.
func WithQueryParam(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.query.Add(key, value)
	}
}

// WithQuery adds all given query parameters to the request.
func WithQuery(params map[string]string) RequestOption {
	return func(o *requestOptions) {
		for k, v := range params {
			o.query.Add(k, v)
		}
	}
}

// Get does a GET request on the given relative path.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.call(ctx, http.MethodGet, path, nil, "", opts)
}

// Head does a HEAD request on the given relative path. The response
// body is the response header set.
func (c *Client) Head(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.call(ctx, http.MethodHead, path, nil, "", opts)
}

// Delete does a DELETE request on the given relative path with an
// optional JSON body.
func (c *Client) Delete(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.call(ctx, http.MethodDelete, path, body, contentTypeJSON, opts)
}

// Post does a POST request on the given relative path with an optional
// JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.call(ctx, http.MethodPost, path, body, contentTypeJSON, opts)
}

// Put does a PUT request on the given relative path with an optional
// JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.call(ctx, http.MethodPut, path, body, contentTypeJSON, opts)
}

// Patch does a PATCH request on the given relative path with an optional
// JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.call(ctx, http.MethodPatch, path, body, contentTypeJSON, opts)
}

const contentTypeJSON = "application/json"

// call applies per-request options and the trailing-slash policy, then
// delegates to Request.
func (c *Client) call(ctx context.Context, method, path string, body any, contentType string, opts []RequestOption) (*Response, error) {
	o := requestOptions{
		headers: make(map[string]string),
		query:   make(url.Values),
	}
	for _, opt := range opts {
		opt(&o)
	}

	path = c.appendSlashTo(path)
	if len(o.query) > 0 {
		path += "?" + o.query.Encode()
	}

	return c.Request(ctx, method, path, body, o.headers, contentType)
}

// Request is the low-level networking call all verb methods go through.
// It merges headers, censors secrets for logging, serializes structured
// bodies to JSON, executes the request, and decodes the response.
// Non-2xx responses return both the decoded *Response and a *Error
// carrying the status.
func (c *Client) Request(ctx context.Context, method, path string, body any, headers map[string]string, contentType string) (*Response, error) {
	merged := make(map[string]string, len(c.config.Headers)+len(headers)+3)
	for k, v := range c.config.Headers {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}
	if contentType != "" {
		merged["Content-Type"] = contentType
	}
	if c.authHeader != "" {
		merged["Authorization"] = c.authHeader
	}
	merged["User-Agent"] = c.config.UserAgent

	censoredHeaders := Censor(headerSecrets, merged)

	var payload []byte
	censoredBody := body
	if body != nil {
		switch b := body.(type) {
		case string:
			// Pre-serialized bodies are assumed already clear of secrets.
			c.log.Debug("request with pre-serialized body, will not censor secrets")
			payload = []byte(b)
		case []byte:
			c.log.Debug("request with pre-serialized body, will not censor secrets")
			payload = b
		default:
			censoredBody = censorValue(bodySecrets, body)
			var err error
			payload, err = json.Marshal(body)
			if err != nil {
				return nil, &Error{
					Code:    ErrCodeValidation,
					Message: fmt.Sprintf("encode body: %v", err),
					Err:     err,
				}
			}
		}
	}

	fullURL := joinURL(c.config.BaseURL, path)
	requestID := uuid.NewString()

	c.log.Debug("client request", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldMethod, method,
		logger.FieldURL, fullURL,
		"headers", censoredHeaders,
		"body", censoredBody,
	))

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, &Error{
			Code:    ErrCodeValidation,
			Message: fmt.Sprintf("create request: %v", err),
			Err:     err,
		}
	}
	for k, v := range merged {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
	}

	var size int
	if method == http.MethodHead {
		result.Body = result.Headers
		size = len(result.Headers)
	} else {
		raw, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, NewConnectionError(fmt.Errorf("read response body: %w", readErr))
		}
		result.Body = decodeBody(raw)
		size = len(raw)
	}

	c.log.Debug("client response", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldStatus, result.StatusCode,
		logger.FieldSize, size,
	))

	if classErr := ClassifyStatusCode(result.StatusCode, result.Body); classErr != nil {
		return result, classErr
	}
	return result, nil
}

// appendSlashTo appends a trailing slash when the policy asks for one.
func (c *Client) appendSlashTo(path string) string {
	if c.config.AppendSlash && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}

// joinURL joins the base URL and a relative path with exactly one
// separating slash, inserted only when neither side supplies one.
func joinURL(base, path string) string {
	switch {
	case strings.HasSuffix(base, "/") && strings.HasPrefix(path, "/"):
		return base + strings.TrimPrefix(path, "/")
	case !strings.HasSuffix(base, "/") && !strings.HasPrefix(path, "/"):
		return base + "/" + path
	default:
		return base + path
	}
}

// decodeBody interprets response bytes as JSON when possible and falls
// back to the raw UTF-8 text.
func decodeBody(raw []byte) any {
	var decoded any
	if len(bytes.TrimSpace(raw)) > 0 && json.Unmarshal(raw, &decoded) == nil {
		return decoded
	}
	return string(raw)
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
