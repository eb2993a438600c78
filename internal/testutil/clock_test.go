// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"sync"
	"testing"
	"time"
)

func TestFakeClock_DefaultTime(t *testing.T) {
	t.Parallel()

	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := NewFakeClock(time.Time{}).Now(); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
}

func TestFakeClock_AdvanceAndSet(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)
	c := NewFakeClock(start)

	c.Advance(90 * time.Minute)
	if got := c.Now(); !got.Equal(start.Add(90 * time.Minute)) {
		t.Errorf("after Advance, Now() = %v", got)
	}

	later := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	c.Set(later)
	if got := c.Now(); !got.Equal(later) {
		t.Errorf("after Set, Now() = %v", got)
	}
}

func TestFakeClock_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewFakeClock(time.Time{})
	start := c.Now()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance(time.Second)
			_ = c.Now()
		}()
	}
	wg.Wait()

	if got := c.Now().Sub(start); got != 10*time.Second {
		t.Errorf("elapsed = %v, want 10s", got)
	}
}
