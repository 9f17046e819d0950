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

// repKind tags which storage field of a representation is active.
// Unsupported/zero value is never observed on a live Sketch; it exists so
// a zero-valued representation panics loudly instead of silently reading
// garbage, the same defensive posture the teacher's hllType switch takes
// against an UNDEFINED storage kind.
type repKind uint8

const (
	repSmall repKind = iota
	repArray
	repHLL
)

// representation is the tagged union over the three storage tiers. Only
// one of small/array/hll is populated at a time, selected by kind; this
// mirrors the teacher's single-struct-many-fields approach (Hll carries
// explicitStorage/sparseProbabilisticStorage/probabilisticStorage side by
// side) rather than an interface-boxed polymorphic value.
type representation struct {
	kind   repKind
	small  small
	array  *array
	hll    *hyperLogLog
	params Params
}

func newRepresentation(params Params) representation {
	return representation{kind: repSmall, params: params}
}

// insertEncoded applies codeword h to the active tier. If the tier must
// promote, rep is replaced in place with the new tier; this is the Go
// shape of the reference design's "insert returns Option<NewVariant>,
// caller swaps it in" pattern, collapsed into a single mutating method
// since Go has no sum-type return to match on here.
func (rep *representation) insertEncoded(h uint32) {
	switch rep.kind {
	case repSmall:
		if rep.small.insert(h) {
			return
		}
		items := rep.small.items()
		rep.kind = repArray
		rep.array = newArrayFromSmall(items[0], items[1], h)
		rep.small = small{}

	case repArray:
		if rep.array.insert(h) {
			return
		}
		hll := newHyperLogLog(rep.array.codewords, rep.params)
		hll.insert(h)
		rep.kind = repHLL
		rep.hll = hll
		rep.array = nil

	case repHLL:
		rep.hll.insert(h)

	default:
		panic("cardinality: representation in unsupported state")
	}
}

func (rep *representation) estimate() uint64 {
	switch rep.kind {
	case repSmall:
		return rep.small.estimate()
	case repArray:
		return rep.array.estimate()
	case repHLL:
		return rep.hll.estimate()
	default:
		panic("cardinality: representation in unsupported state")
	}
}

func (rep *representation) sizeOf() int {
	switch rep.kind {
	case repSmall:
		return 8
	case repArray:
		return 24 + len(rep.array.codewords)*4
	case repHLL:
		return 4 + 4 + 4 + len(rep.hll.registers)*4
	default:
		panic("cardinality: representation in unsupported state")
	}
}

func (rep *representation) clone() representation {
	out := representation{kind: rep.kind, params: rep.params}
	switch rep.kind {
	case repSmall:
		out.small = rep.small.clone()
	case repArray:
		out.array = rep.array.clone()
	case repHLL:
		out.hll = rep.hll.clone()
	default:
		panic("cardinality: representation in unsupported state")
	}
	return out
}

func (rep *representation) equal(other *representation) bool {
	if rep.kind != other.kind {
		return false
	}
	switch rep.kind {
	case repSmall:
		return rep.small.equal(&other.small)
	case repArray:
		return rep.array.equal(other.array)
	case repHLL:
		return rep.hll.equal(other.hll)
	default:
		panic("cardinality: representation in unsupported state")
	}
}

// merge folds rhs into rep, exhausting every (lhs tier, rhs tier) pair the
// way the teacher's Union/homogeneousUnion/heterogenousUnion case
// analysis does, adapted to this package's promotion rules rather than
// HLL++'s sparse/full storage rules.
func (rep *representation) merge(rhs *representation) {
	switch rhs.kind {
	case repSmall:
		for _, h := range rhs.small.items() {
			if h != 0 {
				rep.insertEncoded(h)
			}
		}

	case repArray:
		for _, h := range rhs.array.codewords {
			rep.insertEncoded(h)
		}

	case repHLL:
		switch rep.kind {
		case repSmall:
			hll := rhs.hll.clone()
			for _, h := range rep.small.items() {
				if h != 0 {
					hll.insert(h)
				}
			}
			rep.kind = repHLL
			rep.hll = hll
			rep.small = small{}

		case repArray:
			hll := rhs.hll.clone()
			for _, h := range rep.array.codewords {
				hll.insert(h)
			}
			rep.kind = repHLL
			rep.hll = hll
			rep.array = nil

		case repHLL:
			rep.hll.merge(rhs.hll)

		default:
			panic("cardinality: representation in unsupported state")
		}

	default:
		panic("cardinality: representation in unsupported state")
	}
}
