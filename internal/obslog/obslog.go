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

// Package obslog initializes the structured logger used by the
// cmd/sketchbench demo binary. The cardinality package itself never logs;
// this wiring exists only for standalone programs built on top of it.
package obslog

import (
	"log/slog"
	"os"
)

// Init installs a JSON slog.Logger as the process-wide default, tagging
// every record with the owning component, and returns it for callers that
// want a handle instead of going through slog's package-level functions.
func Init(component string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(handler).With(slog.String("component", component))
	slog.SetDefault(logger)
	return logger
}
