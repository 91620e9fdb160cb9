// Package logger provides structured logging for restkit packages
// using zerolog.
//
// It supports JSON and console output, level configuration from config
// or environment, and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.WithComponent("httpclient")
//	log.Debug("request sent", logger.Fields("method", "GET", "url", url))
package logger
