// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

// Package apierr classifies pipeline failures so handlers can pick the
// right HTTP status and user-facing message without inspecting provider
// internals.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the failure class of a pipeline error.
type Kind int

const (
	// Validation is bad client input. Never retried.
	Validation Kind = iota
	// Configuration is a missing or invalid credential. Operator-fixable.
	Configuration
	// UnsupportedInDeployment means the environment lacks a required binary;
	// the user should change the input format rather than retry.
	UnsupportedInDeployment
	// ConversionFailure means the transcoding subprocess failed.
	ConversionFailure
	// Provider is a non-recoverable upstream service error.
	Provider
	// RateLimited means the upstream throttled us; safe to retry after backoff.
	RateLimited
	// MalformedResponse means the upstream returned a shape we cannot interpret.
	MalformedResponse
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Configuration:
		return "configuration"
	case UnsupportedInDeployment:
		return "unsupported_in_deployment"
	case ConversionFailure:
		return "conversion_failure"
	case Provider:
		return "provider"
	case RateLimited:
		return "rate_limited"
	case MalformedResponse:
		return "malformed_response"
	}
	return "unknown"
}

// Error is a classified pipeline error. Message and Details are safe to
// return to clients; Err is server-side only.
type Error struct {
	Kind    Kind
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted user-facing message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error. The wrapped error is for server-side
// logs; message is what the client sees.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithDetails attaches a short client-visible detail string.
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

// KindOf extracts the classification from err, unwrapping as needed.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// AsError returns the classified error inside err, or wraps err as a
// Provider error when it carries no classification.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(Provider, "unexpected failure", err)
}

// HTTPStatus maps a failure class to the response status the orchestrator
// returns for it.
func HTTPStatus(err error) int {
	kind, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case Validation, UnsupportedInDeployment, ConversionFailure:
		return http.StatusBadRequest
	case RateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
