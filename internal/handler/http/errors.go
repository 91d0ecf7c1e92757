// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for request values that cannot be coerced to the type a
// route expects. Handlers answer all of them with 422 Unprocessable Entity.
var (
	// ErrInvalidPathParam is returned when a path parameter is not an integer.
	ErrInvalidPathParam = errors.New("path parameter must be an integer")

	// ErrInvalidQueryParam is returned when a query parameter is present but
	// is not an integer.
	ErrInvalidQueryParam = errors.New("query parameter must be an integer")
)
