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

import "fmt"

const (
	// MinPrecision is the smallest supported HyperLogLog precision P.
	MinPrecision = 4
	// MaxPrecision is the largest supported HyperLogLog precision P.
	MaxPrecision = 18
	// MinRegisterWidth is the smallest supported register width W.
	MinRegisterWidth = 4
	// MaxRegisterWidth is the largest supported register width W.
	MaxRegisterWidth = 6
)

// Params fixes the precision (P) and register width (W) a Sketch, Element
// and their representations operate under. The reference implementation
// this package follows expresses P and W as compile-time const generics;
// Go has no equivalent, so Params is validated once at construction time
// and carried by value everywhere P/W would otherwise appear as a type
// parameter.
type Params struct {
	p uint8
	w uint8
}

// NewParams validates and builds a Params value. p must be in
// [MinPrecision, MaxPrecision] and w must be in [MinRegisterWidth,
// MaxRegisterWidth].
func NewParams(p, w uint8) (Params, error) {
	if p < MinPrecision || p > MaxPrecision {
		return Params{}, fmt.Errorf("%w: precision %d not in [%d,%d]", ErrInvalidParameters, p, MinPrecision, MaxPrecision)
	}
	if w < MinRegisterWidth || w > MaxRegisterWidth {
		return Params{}, fmt.Errorf("%w: register width %d not in [%d,%d]", ErrInvalidParameters, w, MinRegisterWidth, MaxRegisterWidth)
	}
	return Params{p: p, w: w}, nil
}

// MustParams is NewParams for call sites that want the original
// implementation's "fails before anything runs" texture rather than a
// runtime error value threaded through the hot path.
func MustParams(p, w uint8) Params {
	params, err := NewParams(p, w)
	if err != nil {
		panic(err)
	}
	return params
}

// DefaultParams returns the (P=12, W=6) pair used throughout the reference
// implementation's own benchmarks and tests when none is specified.
func DefaultParams() Params {
	return MustParams(12, 6)
}

// P returns the configured precision.
func (params Params) P() uint8 { return params.p }

// W returns the configured register width.
func (params Params) W() uint8 { return params.w }

// M returns the number of HyperLogLog registers, 2^P.
func (params Params) M() uint32 { return uint32(1) << params.p }

func (params Params) String() string {
	return fmt.Sprintf("P=%d,W=%d", params.p, params.w)
}
