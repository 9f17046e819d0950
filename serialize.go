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
	"fmt"
	"math"
)

// Variant discriminants, used both as the lead byte of the binary wire
// format and as the sole JSON object key of the text form.
const (
	tagSmall byte = 's'
	tagArray byte = 'a'
	tagHLL   byte = 'h'
)

// ToBinary serializes s into the package's little-endian, length-prefixed
// wire format: one discriminant byte, a uint32 payload length, then that
// many little-endian uint32 words. Deserializing the result requires
// knowing the Params it was produced under; UnmarshalBinary takes them
// explicitly rather than trying to recover them from the bytes, the same
// way the reference implementation's Sketch<P, W> needs P and W supplied
// by the type at the call site.
func (s *Sketch) ToBinary() []byte {
	tag, words := s.rep.binaryPayload()
	buf := make([]byte, 1+4+4*len(words))
	buf[0] = tag
	binary.LittleEndian.PutUint32(buf[1:5], uint32(len(words)))
	offset := 5
	for _, w := range words {
		binary.LittleEndian.PutUint32(buf[offset:offset+4], w)
		offset += 4
	}
	return buf
}

// binaryPayload returns the discriminant tag and the uint32 payload for
// the active tier, matching the JSON encoding's shape one-to-one.
func (rep *representation) binaryPayload() (byte, []uint32) {
	switch rep.kind {
	case repSmall:
		return tagSmall, []uint32{uint32(rep.small.word), uint32(rep.small.word >> 32)}
	case repArray:
		return tagArray, rep.array.codewords
	case repHLL:
		words := make([]uint32, 0, len(rep.hll.registers)+2)
		words = append(words, rep.hll.zeros, math.Float32bits(rep.hll.harmonicSum))
		words = append(words, rep.hll.registers...)
		return tagHLL, words
	default:
		panic("cardinality: representation in unsupported state")
	}
}

// UnmarshalBinary parses data produced by ToBinary into a new Sketch under
// params. Deserialization never mutates a partially valid sketch: on
// error the returned *Sketch is nil.
func UnmarshalBinary(data []byte, params Params) (*Sketch, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("%w: binary payload shorter than header", ErrInvalidLength)
	}
	tag := data[0]
	count := binary.LittleEndian.Uint32(data[1:5])
	rest := data[5:]
	if uint64(len(rest)) != uint64(count)*4 {
		return nil, fmt.Errorf("%w: binary payload length does not match header", ErrInvalidLength)
	}
	words := make([]uint32, count)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(rest[i*4 : i*4+4])
	}
	rep, err := repFromPayload(tag, words, params)
	if err != nil {
		return nil, err
	}
	return &Sketch{rep: rep}, nil
}

// repFromPayload builds a representation from a decoded tag/word payload,
// shared by the binary and JSON deserializers since both use the same
// logical shape.
func repFromPayload(tag byte, words []uint32, params Params) (representation, error) {
	switch tag {
	case tagSmall:
		if len(words) != 2 {
			return representation{}, fmt.Errorf("%w: small payload must have 2 words, got %d", ErrInvalidLength, len(words))
		}
		word := uint64(words[0]) | uint64(words[1])<<32
		return representation{kind: repSmall, params: params, small: small{word: word}}, nil

	case tagArray:
		if len(words) < 3 || len(words) > arrayMaxCapacity {
			return representation{}, fmt.Errorf("%w: array payload length %d outside [3,%d]", ErrInvalidLength, len(words), arrayMaxCapacity)
		}
		seen := make(map[uint32]struct{}, len(words))
		codewords := make([]uint32, len(words))
		copy(codewords, words)
		for _, h := range codewords {
			if _, dup := seen[h]; dup {
				return representation{}, fmt.Errorf("%w: array payload contains duplicate codeword", ErrInvalidValue)
			}
			seen[h] = struct{}{}
		}
		return representation{kind: repArray, params: params, array: &array{codewords: codewords}}, nil

	case tagHLL:
		wantLen := hllSliceLen(params) + 2
		if len(words) != wantLen {
			return representation{}, fmt.Errorf("%w: hll payload length %d, want %d", ErrInvalidLength, len(words), wantLen)
		}
		storedZeros := words[0]
		storedSum := math.Float32frombits(words[1])
		registers := make([]uint32, len(words)-2)
		copy(registers, words[2:])

		h := &hyperLogLog{params: params, registers: registers}
		recomputeZerosAndSum(h)

		if h.zeros != storedZeros {
			return representation{}, fmt.Errorf("%w: hll zeros mismatch, stored %d recomputed %d", ErrInvalidValue, storedZeros, h.zeros)
		}
		if math.Abs(float64(storedSum)-float64(h.harmonicSum)) > 0.5 {
			return representation{}, fmt.Errorf("%w: hll harmonic_sum mismatch, stored %v recomputed %v", ErrInvalidValue, storedSum, h.harmonicSum)
		}
		// Adopt the sender's stored harmonic_sum to preserve its precision.
		h.harmonicSum = storedSum
		h.zeros = storedZeros
		return representation{kind: repHLL, params: params, hll: h}, nil

	default:
		return representation{}, fmt.Errorf("%w: tag %q", ErrInvalidVariantTag, tag)
	}
}

// recomputeZerosAndSum rescans h's packed registers and overwrites
// h.zeros/h.harmonicSum from scratch. Used only by deserialization, which
// must validate a sender's claimed zeros/harmonic_sum rather than trust
// them outright.
func recomputeZerosAndSum(h *hyperLogLog) {
	m := h.params.M()
	zeros := uint32(0)
	var sum float32
	for idx := uint32(0); idx < m; idx++ {
		rank := h.getRegister(idx)
		if rank == 0 {
			zeros++
		}
		sum += 1.0 / float32(uint64(1)<<rank)
	}
	h.zeros = zeros
	h.harmonicSum = sum
}
