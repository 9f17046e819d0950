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

package main

import (
	"flag"
	"hash/fnv"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/l0vest0rm/cardinality"
	"github.com/l0vest0rm/cardinality/internal/obslog"
)

func main() {
	logger := obslog.Init("sketchbench")

	precision := flag.Uint("p", 12, "HyperLogLog precision (register index bits)")
	width := flag.Uint("w", 6, "HyperLogLog register width in bits")
	count := flag.Int("n", 1000000, "number of distinct 64-bit values to insert")
	outFile := flag.String("out", "/tmp/sketch.bin", "path to write/read the serialized sketch")
	flag.Parse()

	params, err := cardinality.NewParams(uint8(*precision), uint8(*width))
	if err != nil {
		logger.Error("invalid parameters", slog.Any("err", err))
		os.Exit(1)
	}

	sketch, err := cardinality.NewSketch(params)
	if err != nil {
		logger.Error("failed to build sketch", slog.Any("err", err))
		os.Exit(1)
	}

	start := time.Now()
	for i := 0; i < *count; i++ {
		v := rand.Uint64()
		element := cardinality.NewElementFromHasher(uint64Bytes(v), fnv.New64a, params)
		sketch.Insert(element)
	}
	insertElapsed := time.Since(start)

	estimate := sketch.Estimate()
	accuracy := float64(estimate) / float64(*count)
	logger.Info("insert complete",
		slog.Duration("elapsed", insertElapsed),
		slog.Int("inserted", *count),
		slog.Uint64("estimate", estimate),
		slog.Float64("accuracy", accuracy),
		slog.Int("size_bytes", sketch.SizeOf()),
	)

	data := sketch.ToBinary()
	if err := os.WriteFile(*outFile, data, 0o644); err != nil {
		logger.Error("failed to write sketch", slog.Any("err", err))
		os.Exit(1)
	}

	readBack, err := os.ReadFile(*outFile)
	if err != nil {
		logger.Error("failed to read sketch file", slog.Any("err", err))
		os.Exit(1)
	}
	roundTripped, err := cardinality.UnmarshalBinary(readBack, params)
	if err != nil {
		logger.Error("failed to read back sketch", slog.Any("err", err))
		os.Exit(1)
	}
	logger.Info("round-trip complete", slog.Uint64("estimate", roundTripped.Estimate()))

	other, err := cardinality.NewSketch(params)
	if err != nil {
		logger.Error("failed to build second sketch", slog.Any("err", err))
		os.Exit(1)
	}
	for i := 0; i < *count/10; i++ {
		v := rand.Uint64()
		element := cardinality.NewElementFromHasher(uint64Bytes(v), fnv.New64a, params)
		other.Insert(element)
	}
	if err := sketch.Merge(other); err != nil {
		logger.Error("merge failed", slog.Any("err", err))
		os.Exit(1)
	}
	logger.Info("merge complete", slog.Uint64("estimate", sketch.Estimate()))
}

func uint64Bytes(v uint64) []byte {
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	return buf
}
