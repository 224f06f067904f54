// Package logsink provides the log destinations of a training run: a
// line-oriented text handler that renders records as
//
//	2006-01-02 15:04:05,000 - pkg.Func - LEVEL : message key=value
//
// a dated log file opened in append mode, and a fan-out handler that feeds
// one record to several sinks.
package logsink
