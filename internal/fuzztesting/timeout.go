// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fuzztesting contains helpers for fuzz targets.
package fuzztesting

import (
	"context"
	"testing"
	"time"
)

// RunWithTimeout runs fn a few times, failing t if the runs together take
// longer than a fuzzer would tolerate for a single input.
//
// Parsing is linear in the size of its input, so any input that trips this
// deadline has found a quadratic (or worse) path.
func RunWithTimeout(t *testing.T, fn func(ctx context.Context)) {
	t.Helper()

	allowed := 2 * time.Second
	if isRace {
		// The race detector has been observed to make runs about 8x slower.
		allowed = 20 * time.Second
		t.Logf("allowing %v since race detector is enabled", allowed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), allowed)
	defer func() {
		if ctx.Err() != nil {
			t.Errorf("test took too long to execute (> %v)", allowed)
		}
		cancel()
	}()
	for range 3 {
		if ctx.Err() != nil {
			break
		}
		fn(ctx)
	}
}
