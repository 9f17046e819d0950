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

import "testing"

func code(idx, rank, w uint32) uint32 {
	return (idx << w) | rank
}

// TestHyperLogLogRegisterRoundTrip exercises get/set across every register
// index for parameters whose M*W is not a multiple of 32, so some
// registers straddle a word boundary.
func TestHyperLogLogRegisterRoundTrip(t *testing.T) {
	params := MustParams(4, 5) // M=16, W=5: 80 bits, not word-aligned.
	h := newHyperLogLog(nil, params)

	for idx := uint32(0); idx < params.M(); idx++ {
		rank := (idx % 30) + 1
		old := h.getRegister(idx)
		h.setRegister(idx, old, rank)
		if got := h.getRegister(idx); got != rank {
			t.Fatalf("register[%d] = %d, want %d", idx, got, rank)
		}
	}
}

func TestHyperLogLogZerosAndHarmonicSumTrackWrites(t *testing.T) {
	params := MustParams(4, 5)
	h := newHyperLogLog(nil, params)
	if h.zeros != params.M() {
		t.Fatalf("zeros = %d, want %d", h.zeros, params.M())
	}

	h.insert(code(0, 3, 5))
	if h.zeros != params.M()-1 {
		t.Fatalf("zeros after one insert = %d, want %d", h.zeros, params.M()-1)
	}

	recomputed := h.clone()
	recomputeZerosAndSum(recomputed)
	if recomputed.zeros != h.zeros {
		t.Fatalf("incremental zeros %d disagree with recomputed zeros %d", h.zeros, recomputed.zeros)
	}
	if diff := float64(recomputed.harmonicSum) - float64(h.harmonicSum); diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("incremental harmonic_sum %v disagrees with recomputed %v", h.harmonicSum, recomputed.harmonicSum)
	}
}

func TestHyperLogLogEstimateZeroWhenEmpty(t *testing.T) {
	h := newHyperLogLog(nil, DefaultParams())
	if got := h.estimate(); got != 0 {
		t.Fatalf("estimate of an empty hll = %d, want 0", got)
	}
}

func TestHyperLogLogInsertIsMaxNotOverwrite(t *testing.T) {
	params := MustParams(4, 5)
	h := newHyperLogLog(nil, params)
	h.insert(code(2, 10, 5))
	h.insert(code(2, 4, 5)) // lower rank at the same index must not regress
	if got := h.getRegister(2); got != 10 {
		t.Fatalf("register[2] = %d, want 10", got)
	}
}

func TestHyperLogLogMergeTakesMaxPerRegister(t *testing.T) {
	params := MustParams(4, 5)
	lhs := newHyperLogLog([]uint32{code(0, 3, 5)}, params)
	rhs := newHyperLogLog([]uint32{code(0, 5, 5), code(1, 2, 5)}, params)

	lhs.merge(rhs)

	if got := lhs.getRegister(0); got != 5 {
		t.Fatalf("register[0] after merge = %d, want 5", got)
	}
	if got := lhs.getRegister(1); got != 2 {
		t.Fatalf("register[1] after merge = %d, want 2", got)
	}
}
