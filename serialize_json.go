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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// wireDoc is the on-the-wire JSON shape: an object with exactly one of
// "s", "a" or "h" present. "s" carries the raw 64-bit small word; "a" and
// "h" carry their uint32 payload as a JSON array, matching ToBinary's
// payload one-to-one.
type wireDoc struct {
	Small *uint64  `json:"s,omitempty"`
	Array []uint32 `json:"a,omitempty"`
	HLL   []uint32 `json:"h,omitempty"`
}

// ToJSON serializes s into the package's tagged JSON form.
func (s *Sketch) ToJSON() ([]byte, error) {
	doc := wireDoc{}
	switch s.rep.kind {
	case repSmall:
		word := s.rep.small.word
		doc.Small = &word
	case repArray:
		doc.Array = s.rep.array.codewords
	case repHLL:
		_, words := s.rep.binaryPayload()
		doc.HLL = words
	default:
		panic("cardinality: representation in unsupported state")
	}
	return json.Marshal(doc)
}

// UnmarshalJSON parses data produced by ToJSON into a new Sketch under
// params, applying the same validation UnmarshalBinary does. A document
// carrying any key other than "s", "a" or "h" is rejected outright rather
// than silently ignored.
func UnmarshalJSON(data []byte, params Params) (*Sketch, error) {
	var doc wireDoc
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		if isUnknownFieldError(err) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidVariantTag, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	// Reject trailing garbage: the document must be a single complete
	// JSON value, not a value followed by dangling tokens.
	if err := decoder.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidValue)
	}

	present := 0
	if doc.Small != nil {
		present++
	}
	if doc.Array != nil {
		present++
	}
	if doc.HLL != nil {
		present++
	}
	if present != 1 {
		return nil, fmt.Errorf("%w: document must carry exactly one of s/a/h", ErrInvalidVariantTag)
	}

	var (
		rep representation
		err error
	)
	switch {
	case doc.Small != nil:
		rep, err = repFromPayload(tagSmall, []uint32{uint32(*doc.Small), uint32(*doc.Small >> 32)}, params)
	case doc.Array != nil:
		rep, err = repFromPayload(tagArray, doc.Array, params)
	case doc.HLL != nil:
		rep, err = repFromPayload(tagHLL, doc.HLL, params)
	}
	if err != nil {
		return nil, err
	}
	return &Sketch{rep: rep}, nil
}

// isUnknownFieldError reports whether err is the error
// json.Decoder.Decode returns when DisallowUnknownFields rejects a key
// absent from wireDoc. encoding/json has no sentinel or typed error for
// this, only the message shape "json: unknown field %q".
func isUnknownFieldError(err error) bool {
	return strings.Contains(err.Error(), "unknown field")
}
