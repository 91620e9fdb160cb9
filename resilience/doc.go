// Package resilience provides a retry helper for operations that may
// fail transiently.
//
// Retry runs a function up to a fixed number of attempts with an optional
// fixed sleep between tries, re-raising the last error when all attempts
// fail. It is a standalone utility: the restkit HTTP client never retries
// internally.
package resilience
