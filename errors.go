/**
 * Copyright 2016 l0vest0rm.hll authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License"): you may
 * not use this file except in compliance with the License. You may obtain
 * a copy of the License at
 *
 *     http: *www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations
 * under the License.
 */

package cardinality

import "errors"

// Sentinel error kinds. Wrap with fmt.Errorf("%w: ...") at the call site so
// callers can still errors.Is against the kind.
var (
	// ErrInvalidVariantTag is returned when a serialized sketch carries an
	// unrecognized representation discriminant.
	ErrInvalidVariantTag = errors.New("cardinality: invalid variant tag")

	// ErrInvalidLength is returned when a serialized payload's length falls
	// outside what its variant allows.
	ErrInvalidLength = errors.New("cardinality: invalid payload length")

	// ErrInvalidValue is returned when a serialized payload's length is
	// acceptable but its content fails validation (duplicate array entries,
	// an HLL zeros/harmonic_sum mismatch, and the like).
	ErrInvalidValue = errors.New("cardinality: invalid payload value")

	// ErrInvalidParameters is returned by constructors when P or W fall
	// outside their supported ranges.
	ErrInvalidParameters = errors.New("cardinality: invalid sketch parameters")
)
