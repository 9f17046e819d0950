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

// Package cardinality implements a probabilistic distinct-count sketch
// that scales its internal storage to the observed load: exact storage
// for very small and medium sets, and a HyperLogLog-Beta approximation
// once a set outgrows exact representation.
package cardinality

import "fmt"

// Sketch estimates the number of distinct elements inserted into it. The
// zero value is not usable; construct one with NewSketch or
// NewDefaultSketch. A Sketch is a plain value type with no internal
// locking: concurrent use from multiple goroutines requires the caller to
// serialize access, the same division of responsibility the teacher's Hll
// type leaves to its callers.
type Sketch struct {
	rep representation
}

// NewSketch builds an empty Sketch under the given parameters. It returns
// an error wrapping ErrInvalidParameters if params is outside the
// supported ranges (as the zero Params value is).
func NewSketch(params Params) (*Sketch, error) {
	if _, err := NewParams(params.p, params.w); err != nil {
		return nil, err
	}
	return &Sketch{rep: newRepresentation(params)}, nil
}

// NewDefaultSketch builds an empty Sketch under DefaultParams (P=12, W=6).
func NewDefaultSketch() *Sketch {
	sketch, err := NewSketch(DefaultParams())
	if err != nil {
		// DefaultParams is always valid; this cannot happen.
		panic(err)
	}
	return sketch
}

// Params returns the Params this Sketch was constructed with.
func (s *Sketch) Params() Params {
	return s.rep.params
}

// Insert adds element to the sketch, promoting its internal
// representation if needed. element must have been encoded under the
// same Params as s; a mismatch is a programmer error and panics, the same
// way the reference implementation treats a Params mismatch as
// impossible to observe through the public API rather than a recoverable
// condition.
func (s *Sketch) Insert(element Element) {
	if element.params != s.rep.params {
		panic(fmt.Sprintf("cardinality: element encoded under %s does not match sketch %s", element.params, s.rep.params))
	}
	s.rep.insertEncoded(element.codeword)
}

// Estimate returns the current cardinality estimate.
func (s *Sketch) Estimate() uint64 {
	return s.rep.estimate()
}

// SizeOf returns the approximate in-memory footprint, in bytes, of the
// active tier.
func (s *Sketch) SizeOf() int {
	return s.rep.sizeOf()
}

// Merge folds rhs's elements into s. rhs is left unmodified. s and rhs
// must share the same Params.
func (s *Sketch) Merge(rhs *Sketch) error {
	if s.rep.params != rhs.rep.params {
		return fmt.Errorf("%w: merge requires matching params, got %s and %s", ErrInvalidParameters, s.rep.params, rhs.rep.params)
	}
	s.rep.merge(&rhs.rep)
	return nil
}

// Clone returns a deep, tier-preserving copy of s.
func (s *Sketch) Clone() *Sketch {
	return &Sketch{rep: s.rep.clone()}
}

// Equal reports whether s and other hold the same tier and contents.
func (s *Sketch) Equal(other *Sketch) bool {
	if other == nil {
		return false
	}
	return s.rep.equal(&other.rep)
}

func (s *Sketch) String() string {
	return fmt.Sprintf("estimate: %d", s.Estimate())
}
