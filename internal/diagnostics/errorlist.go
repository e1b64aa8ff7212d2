// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagnostics collects errors encountered across a batch CLI run
// (cmd/esgen processing more than one input file), so a single
// invocation can report every failure instead of stopping at the first.
// It is adapted from geas's internal/loader.ErrorList: the accumulate-
// then-abort-past-a-threshold shape is the same, generalized from
// per-statement assembly errors to per-file codegen errors.
package diagnostics

import (
	"errors"
	"fmt"
)

var errTooManyErrors = errors.New("diagnostics: too many errors")

// List accumulates errors across a run, panicking with a recoverable
// sentinel once more than maxErrors real errors have been added.
type List struct {
	errs      []error
	maxErrors int
}

// NewList creates a List that aborts once more than maxErrors errors have
// accumulated. maxErrors <= 0 means unlimited.
func NewList(maxErrors int) *List {
	return &List{maxErrors: maxErrors}
}

// CatchAbort recovers the panic List.Add raises past the error
// threshold, re-panicking anything else. Callers defer this around any
// code that calls Add.
func (l *List) CatchAbort() {
	if r := recover(); r != nil && r != errTooManyErrors {
		panic(r)
	}
}

// Add appends a non-nil error, tagged with the file it came from.
func (l *List) Add(file string, err error) {
	if err == nil {
		return
	}
	l.errs = append(l.errs, &fileError{file: file, err: err})
	if l.maxErrors > 0 && len(l.errs) > l.maxErrors {
		panic(errTooManyErrors)
	}
}

// HasErrors reports whether any error was recorded.
func (l *List) HasErrors() bool { return len(l.errs) > 0 }

// Errors returns every recorded error in insertion order.
func (l *List) Errors() []error { return l.errs }

type fileError struct {
	file string
	err  error
}

func (e *fileError) Error() string { return fmt.Sprintf("%s: %s", e.file, e.err) }
func (e *fileError) Unwrap() error { return e.err }
