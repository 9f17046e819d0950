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

// arrayMaxCapacity is the largest number of distinct codewords the array
// tier holds before the next insert forces promotion to the HLL tier.
const arrayMaxCapacity = 128

// array is the medium-cardinality exact tier: a deduplicated, unordered
// sequence of up to arrayMaxCapacity codewords.
type array struct {
	codewords []uint32
}

// newArrayFromSmall builds the initial 3-element array a small tier
// promotes into. a and b come from the small word's two slots; h is the
// codeword that overflowed it. The three are pairwise distinct by
// construction: a small tier only reaches capacity once a and b are both
// occupied and distinct from h.
func newArrayFromSmall(a, b, h uint32) *array {
	codewords := make([]uint32, 0, arrayMaxCapacity)
	codewords = append(codewords, a, b, h)
	return &array{codewords: codewords}
}

func (a *array) contains(h uint32) bool {
	for _, existing := range a.codewords {
		if existing == h {
			return true
		}
	}
	return false
}

// insert stores h if it is not already present and there is room,
// returning true. It returns false once the array is full and h is a new
// codeword, signaling that the caller must promote to the HLL tier.
func (a *array) insert(h uint32) bool {
	if a.contains(h) {
		return true
	}
	if len(a.codewords) < arrayMaxCapacity {
		a.codewords = append(a.codewords, h)
		return true
	}
	return false
}

func (a *array) estimate() uint64 {
	return uint64(len(a.codewords))
}

func (a *array) clone() *array {
	codewords := make([]uint32, len(a.codewords), cap(a.codewords))
	copy(codewords, a.codewords)
	return &array{codewords: codewords}
}

func (a *array) equal(other *array) bool {
	if len(a.codewords) != len(other.codewords) {
		return false
	}
	// Array equality is positional: both sides are built the same way
	// (append-only, no reordering), so same contents at the same tier
	// always produce the same order.
	for i, h := range a.codewords {
		if other.codewords[i] != h {
			return false
		}
	}
	return true
}
