// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Validator checks a domain object before it reaches the store.
//
// Validate inspects obj and returns nil when it is valid. When fields are
// given only those fields are checked; otherwise every known field is.
// All violations are reported at once, joined with [errors.Join], so that
// callers can show every message to the user; see [Messages].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
