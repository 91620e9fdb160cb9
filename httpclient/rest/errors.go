package rest

import "github.com/vscentrum/restkit/httpclient"

// Error helpers delegate to httpclient's classification, so rest users
// don't need to import httpclient for error checking.

// IsConfig checks if the error is a connection-configuration error.
func IsConfig(err error) bool { return httpclient.IsConfig(err) }

// IsNotFound checks if the error is a 404 Not Found.
func IsNotFound(err error) bool { return httpclient.IsNotFound(err) }

// IsAuth checks if the error is a 401/403 authentication error.
func IsAuth(err error) bool { return httpclient.IsAuth(err) }

// IsServerError checks if the error is a 5xx server error.
func IsServerError(err error) bool { return httpclient.IsServerError(err) }

// IsTimeout checks if the error is a timeout.
func IsTimeout(err error) bool { return httpclient.IsTimeout(err) }

// StatusOf returns the HTTP status carried by a transport error, or 0.
func StatusOf(err error) int { return httpclient.StatusOf(err) }
