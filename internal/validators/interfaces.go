// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the presence and format rules applied to
// credentials and note drafts before any request leaves the client, and
// again on the server before anything is stored.
//
// A Validator may be scoped to a subset of fields by passing field names;
// fields are checked in the given order and the first failure is returned.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
