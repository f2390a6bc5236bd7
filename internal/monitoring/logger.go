// Package monitoring holds the diagnostic logger shared by the grid packages.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// warnPrefix tags recoverable conditions, such as a rejected sector bound.
const warnPrefix = "[polargrid] warning: "

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Warnf reports a condition that was handled locally but that the operator
// should know about.
func Warnf(format string, v ...interface{}) {
	Logf(warnPrefix+format, v...)
}
