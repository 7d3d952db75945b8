// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements the error-handling convention used throughout
// this module: a typed Kind plus panic/recover helpers that let deeply
// nested decode logic abort with a single panic instead of threading error
// returns through every call frame.
//
// This is the package that the teacher repository's own source imports
// (see the call sites this package's API is modeled on: bzip2.Reader's
// "errors.Corrupted"/"errorf"/"panicf"/"errors.Recover" usage) but which
// was never shipped as part of the retrieved example tree; its contract is
// reconstructed here from those call sites, adapted to this module's own
// Kind set.
package errors

import (
	"fmt"
	"runtime"
)

// Kind identifies the broad category of an Error, per spec §7.
type Kind uint8

const (
	// Other is the zero value; used only for errors that do not fit any of
	// the named kinds below.
	Other Kind = iota

	// IO indicates a failure from the underlying byte source (read or seek).
	IO

	// Configuration indicates a construction-time parameter error (bad
	// algorithm name, invalid map string, size constraints violated).
	Configuration

	// Internal indicates a consistency check failed that should never fail
	// absent a bug (e.g. bytes_read != bytes_yielded at EOF).
	Internal

	// Simulated indicates an intentionally injected failure from the
	// failing chunker.
	Simulated
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "I/O error"
	case Configuration:
		return "configuration error"
	case Internal:
		return "internal error"
	case Simulated:
		return "simulated I/O error"
	default:
		return "error"
	}
}

// Error is the typed error value used across this module.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// errorf constructs an *Error of the given kind.
func errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Errorf is the exported form of errorf, for use by other packages in this
// module that need to construct a typed error without panicking.
func Errorf(kind Kind, format string, args ...interface{}) error {
	return errorf(kind, format, args...)
}

// panicf constructs an *Error of the given kind and panics with it.
// It is always used from within a function deferring Recover.
func panicf(kind Kind, format string, args ...interface{}) {
	panic(errorf(kind, format, args...))
}

// Panicf is the exported form of panicf.
func Panicf(kind Kind, format string, args ...interface{}) {
	panicf(kind, format, args...)
}

// Panic panics with err as-is, preserving its type (used to propagate io.EOF
// and other sentinel errors up through a panic/recover boundary).
func Panic(err error) {
	panic(err)
}

// Recover is deferred at the top of any function that may call panicf or
// Panic. It assigns the recovered error to *err, does nothing if there was
// no panic, and re-panics if the recovered value is a runtime error or not
// an error at all (a real bug, not an expected failure).
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// No panic occurred.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
