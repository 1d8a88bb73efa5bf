// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

// mapCounter is a CounterStore on a plain map; TTLs are ignored because the
// tests control time explicitly.
type mapCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newMapCounter() *mapCounter {
	return &mapCounter{counts: make(map[string]int64)}
}

func (m *mapCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
	return m.counts[key], nil
}

func (m *mapCounter) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key], nil
}

func TestSlidingWindow_LimitWithinWindow(t *testing.T) {
	clk := &fakeClock{now: time.Unix(100, 0)}
	limiter := SlidingWindowFactory(clk, newMapCounter(), "test")(2, time.Second)
	ctx := context.Background()

	r, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, r.Allowed)
	assert.Equal(t, int64(1), r.Remaining)

	r, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, r.Allowed)
	assert.Equal(t, int64(0), r.Remaining)

	r, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, r.Allowed)
	assert.Equal(t, time.Second, r.RetryAfter)
}

func TestSlidingWindow_PreviousWindowWeighsIn(t *testing.T) {
	clk := &fakeClock{now: time.Unix(100, 0)}
	limiter := SlidingWindowFactory(clk, newMapCounter(), "test")(2, time.Second)
	ctx := context.Background()

	// Fill the first window past its limit.
	for range 3 {
		_, err := limiter.Allow(ctx, "client")
		require.NoError(t, err)
	}

	// Right at the next window boundary the previous window still carries
	// full weight, so the client stays limited.
	clk.now = time.Unix(101, 0)
	r, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, r.Allowed)

	// Halfway into the window after that, the interpolated usage has
	// decayed below the limit.
	clk.now = time.Unix(102, 500_000_000)
	r, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, r.Allowed)
}

func TestSlidingWindow_FreshWindowResets(t *testing.T) {
	clk := &fakeClock{now: time.Unix(100, 0)}
	limiter := SlidingWindowFactory(clk, newMapCounter(), "test")(2, time.Second)
	ctx := context.Background()

	for range 3 {
		_, err := limiter.Allow(ctx, "client")
		require.NoError(t, err)
	}

	// Two full windows later nothing carries over.
	clk.now = time.Unix(102, 500_000_000)
	r, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, r.Allowed)
	assert.Equal(t, int64(1), r.Remaining)
}

func TestSlidingWindow_KeysAreIsolated(t *testing.T) {
	clk := &fakeClock{now: time.Unix(100, 0)}
	limiter := SlidingWindowFactory(clk, newMapCounter(), "test")(1, time.Second)
	ctx := context.Background()

	r, err := limiter.Allow(ctx, "first")
	require.NoError(t, err)
	assert.True(t, r.Allowed)

	r, err = limiter.Allow(ctx, "first")
	require.NoError(t, err)
	assert.False(t, r.Allowed)

	r, err = limiter.Allow(ctx, "second")
	require.NoError(t, err)
	assert.True(t, r.Allowed)
}
