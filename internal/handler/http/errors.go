// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all, or
	// when the header value is blank.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
)
