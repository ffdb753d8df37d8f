/*
Copyright 2026 The Squall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package sqerrors provides the error type used across the planner. Every
// error carries a canonical Code and, where it matters to callers, a State
// naming the exact failure. Errors capture a stack trace which is printed
// with the %+v verb.
package sqerrors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Code is a canonical error code, modeled on the gRPC status codes.
type Code int32

// All the canonical codes.
const (
	OK Code = iota
	Canceled
	Unknown
	InvalidArgument
	DeadlineExceeded
	NotFound
	AlreadyExists
	PermissionDenied
	ResourceExhausted
	FailedPrecondition
	Aborted
	OutOfRange
	Unimplemented
	Internal
	Unavailable
)

var codeNames = [...]string{
	OK:                 "OK",
	Canceled:           "CANCELED",
	Unknown:            "UNKNOWN",
	InvalidArgument:    "INVALID_ARGUMENT",
	DeadlineExceeded:   "DEADLINE_EXCEEDED",
	NotFound:           "NOT_FOUND",
	AlreadyExists:      "ALREADY_EXISTS",
	PermissionDenied:   "PERMISSION_DENIED",
	ResourceExhausted:  "RESOURCE_EXHAUSTED",
	FailedPrecondition: "FAILED_PRECONDITION",
	Aborted:            "ABORTED",
	OutOfRange:         "OUT_OF_RANGE",
	Unimplemented:      "UNIMPLEMENTED",
	Internal:           "INTERNAL",
	Unavailable:        "UNAVAILABLE",
}

func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", int32(c))
}

// ErrorWithCode is implemented by errors that know their canonical code.
type ErrorWithCode interface {
	ErrorCode() Code
}

// ErrorWithState is implemented by errors that carry a State.
type ErrorWithState interface {
	ErrorState() State
}

type sqError struct {
	code  Code
	state State
	err   error
}

func (e *sqError) Error() string {
	return e.err.Error()
}

func (e *sqError) ErrorCode() Code {
	return e.code
}

func (e *sqError) ErrorState() State {
	return e.state
}

// Format delegates to the underlying error so that %+v prints the stack.
func (e *sqError) Format(s fmt.State, verb rune) {
	if f, ok := e.err.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.err.Error())
}

// New returns an error with the supplied code and message.
func New(code Code, message string) error {
	return &sqError{code: code, err: pkgerrors.New(message)}
}

// Errorf returns an error with the supplied code and a formatted message.
func Errorf(code Code, format string, args ...any) error {
	return &sqError{code: code, err: pkgerrors.Errorf(format, args...)}
}

// NewErrorf returns an error with the supplied code, state and formatted message.
func NewErrorf(code Code, state State, format string, args ...any) error {
	return &sqError{code: code, state: state, err: pkgerrors.Errorf(format, args...)}
}

// Wrapf annotates err with a formatted message. The code and state of err
// are preserved. Wrapf returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Wrap annotates err with message. Wrap returns nil if err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// ErrCode returns the canonical code of err. Errors that were not created by
// this package are reported as Unknown.
func ErrCode(err error) Code {
	if err == nil {
		return OK
	}
	var ec ErrorWithCode
	if errors.As(err, &ec) {
		return ec.ErrorCode()
	}
	return Unknown
}

// ErrState returns the State of err, or Undefined.
func ErrState(err error) State {
	if err == nil {
		return Undefined
	}
	var es ErrorWithState
	if errors.As(err, &es) {
		return es.ErrorState()
	}
	return Undefined
}
