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

// smallMask extracts the 31-bit codeword packed into a small word.
const smallMask = 0x7fffffff

// small is the two-element exact tier: two 31-bit codewords packed into a
// single 64-bit word (bits 0-1 are reserved for an embedding variant tag,
// matching the layout a caller serializing the word directly would expect;
// this package never reads or writes those two bits itself).
type small struct {
	word uint64
}

// insert stores h if there is room or if h is already present, returning
// true. It returns false when both slots are occupied by some other
// codeword, signaling that the caller must promote to the array tier.
func (s *small) insert(h uint32) bool {
	h1 := s.h1()
	if h1 == 0 {
		s.word |= uint64(h) << 2
		return true
	}
	if h1 == h {
		return true
	}

	h2 := s.h2()
	if h2 == 0 {
		s.word |= uint64(h) << 33
		return true
	}
	return h2 == h
}

func (s *small) h1() uint32 {
	return uint32((s.word >> 2) & smallMask)
}

func (s *small) h2() uint32 {
	return uint32((s.word >> 33) & smallMask)
}

// items returns the occupied codewords; an entry is 0 when its slot is
// empty (0 is not a reachable codeword since rank is always >= 1).
func (s *small) items() [2]uint32 {
	return [2]uint32{s.h1(), s.h2()}
}

func (s *small) estimate() uint64 {
	h1, h2 := s.h1(), s.h2()
	switch {
	case h1 == 0 && h2 == 0:
		return 0
	case h2 == 0:
		return 1
	default:
		return 2
	}
}

func (s *small) clone() small {
	return small{word: s.word}
}

func (s *small) equal(other *small) bool {
	return s.word == other.word
}
