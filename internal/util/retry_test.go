// ABOUTME: Unit tests for the exponential backoff helper
// ABOUTME: Growth, capping and jitter bounds
package util

import (
	"testing"
	"time"
)

func TestCalculateBackoff_NonPositiveAttempt(t *testing.T) {
	if got := CalculateBackoff(time.Second, 0); got != 0 {
		t.Errorf("Attempt 0 should have no delay, got %v", got)
	}
	if got := CalculateBackoff(time.Second, -1); got != 0 {
		t.Errorf("Negative attempt should have no delay, got %v", got)
	}
}

func TestCalculateBackoff_JitterBounds(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 1; attempt <= 5; attempt++ {
		expected := base << uint(attempt)
		for i := 0; i < 50; i++ {
			got := CalculateBackoff(base, attempt)
			lo := expected - expected/4
			hi := expected + expected/4
			if got < lo || got > hi {
				t.Fatalf("Attempt %d: backoff %v outside [%v, %v]", attempt, got, lo, hi)
			}
		}
	}
}

func TestCalculateBackoff_Cap(t *testing.T) {
	for _, attempt := range []int{10, 30, 100} {
		got := CalculateBackoff(time.Second, attempt)
		// Jitter can push the capped value up by at most 25%.
		if got > maxBackoff+maxBackoff/4 {
			t.Errorf("Attempt %d: backoff %v exceeds cap with jitter", attempt, got)
		}
		if got < maxBackoff-maxBackoff/4 {
			t.Errorf("Attempt %d: backoff %v below capped range", attempt, got)
		}
	}
}

func TestCalculateBackoff_DefaultsBaseDelay(t *testing.T) {
	got := CalculateBackoff(0, 1)
	if got < 1500*time.Millisecond || got > 2500*time.Millisecond {
		t.Errorf("Zero base delay should default to one second, got %v", got)
	}
}
