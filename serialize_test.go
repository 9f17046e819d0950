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

import (
	"encoding/binary"
	"errors"
	"testing"
)

func buildSketch(t *testing.T, n int) (*Sketch, Params) {
	t.Helper()
	params := DefaultParams()
	s, err := NewSketch(params)
	if err != nil {
		t.Fatalf("NewSketch: %v", err)
	}
	for i := 0; i < n; i++ {
		s.Insert(elementFor(i, params))
	}
	return s, params
}

func TestRoundTripBinarySmall(t *testing.T) {
	s, params := buildSketch(t, 2)
	data := s.ToBinary()
	got, err := UnmarshalBinary(data, params)
	if err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !s.Equal(got) {
		t.Fatalf("round-tripped sketch does not equal the original")
	}
	if got.Estimate() != s.Estimate() {
		t.Fatalf("estimate changed across round trip: %d -> %d", s.Estimate(), got.Estimate())
	}
}

func TestRoundTripBinaryArray(t *testing.T) {
	s, params := buildSketch(t, 50)
	data := s.ToBinary()
	got, err := UnmarshalBinary(data, params)
	if err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !s.Equal(got) {
		t.Fatalf("round-tripped sketch does not equal the original")
	}
}

func TestRoundTripBinaryHLL(t *testing.T) {
	s, params := buildSketch(t, 300)
	data := s.ToBinary()
	got, err := UnmarshalBinary(data, params)
	if err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !s.Equal(got) {
		t.Fatalf("round-tripped hll sketch does not equal the original")
	}
	if got.Estimate() != s.Estimate() {
		t.Fatalf("estimate changed across round trip: %d -> %d", s.Estimate(), got.Estimate())
	}
}

func TestRoundTripJSONAllTiers(t *testing.T) {
	for _, n := range []int{0, 2, 50, 300} {
		s, params := buildSketch(t, n)
		data, err := s.ToJSON()
		if err != nil {
			t.Fatalf("ToJSON(n=%d): %v", n, err)
		}
		got, err := UnmarshalJSON(data, params)
		if err != nil {
			t.Fatalf("UnmarshalJSON(n=%d): %v", n, err)
		}
		if !s.Equal(got) {
			t.Fatalf("round-tripped json sketch (n=%d) does not equal the original", n)
		}
	}
}

func TestUnmarshalJSONRejectsUnknownKey(t *testing.T) {
	_, err := UnmarshalJSON([]byte(`{"s":0,"junk":1}`), DefaultParams())
	if !errors.Is(err, ErrInvalidVariantTag) {
		t.Fatalf("err = %v, want ErrInvalidVariantTag", err)
	}
}

func TestUnmarshalJSONRejectsTrailingData(t *testing.T) {
	_, err := UnmarshalJSON([]byte(`{"s":0}{}`), DefaultParams())
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("err = %v, want ErrInvalidValue", err)
	}
}

func TestUnmarshalBinaryRejectsTruncatedHeader(t *testing.T) {
	_, err := UnmarshalBinary([]byte{1, 2, 3}, DefaultParams())
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}

func TestUnmarshalBinaryRejectsUnknownTag(t *testing.T) {
	buf := make([]byte, 5)
	buf[0] = 'z'
	_, err := UnmarshalBinary(buf, DefaultParams())
	if !errors.Is(err, ErrInvalidVariantTag) {
		t.Fatalf("err = %v, want ErrInvalidVariantTag", err)
	}
}

func TestUnmarshalBinaryRejectsArrayTooShort(t *testing.T) {
	params := DefaultParams()
	words := []uint32{1, 2} // below the minimum array length of 3
	buf := make([]byte, 5+4*len(words))
	buf[0] = tagArray
	binary.LittleEndian.PutUint32(buf[1:5], uint32(len(words)))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[5+i*4:5+i*4+4], w)
	}
	_, err := UnmarshalBinary(buf, params)
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}

func TestUnmarshalBinaryRejectsCorruptedHLLZeros(t *testing.T) {
	s, params := buildSketch(t, 300)
	data := s.ToBinary()
	// Corrupt the first payload word (zeros) without touching the
	// registers, so the recomputed value disagrees with what's stored.
	data[5] ^= 0xFF
	_, err := UnmarshalBinary(data, params)
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("err = %v, want ErrInvalidValue", err)
	}
}
