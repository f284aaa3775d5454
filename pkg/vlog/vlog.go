// Package vlog makes the logger used by the programs here. It is a
// logfmt logger on to some writer, usually stderr, with a verbosity
// level that decides what gets through.
package vlog

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Verbosity levels
const (
	Quiet = iota // errors only
	Warn
	Info
	Debug
)

// allow maps a verbosity on to a go-kit level filter.
func allow(vbsty int) level.Option {
	switch {
	case vbsty <= Quiet:
		return level.AllowError()
	case vbsty == Warn:
		return level.AllowWarn()
	case vbsty == Info:
		return level.AllowInfo()
	}
	return level.AllowDebug()
}

// New returns a logger writing logfmt lines with a UTC time stamp.
func New(w io.Writer, vbsty int) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, allow(vbsty))
}

// Nop is for tests and callers who do not care.
func Nop() log.Logger { return log.NewNopLogger() }
