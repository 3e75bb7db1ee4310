package cmd

import (
	"testing"
	"time"
)

func TestLookupWorkload(t *testing.T) {
	for _, name := range []string{"sleep", "spin", "blake2b"} {
		if _, err := lookupWorkload(name); err != nil {
			t.Errorf("lookupWorkload(%q) failed: %v", name, err)
		}
	}
	if _, err := lookupWorkload("nope"); err == nil {
		t.Error("Expected an error for an unknown workload")
	}
}

func TestSleepWorkload(t *testing.T) {
	start := time.Now()
	out, err := sleepWorkload("30ms")
	if err != nil {
		t.Fatalf("sleepWorkload failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Slept only %v", elapsed)
	}
	if out != 0.03 {
		t.Errorf("Expected slept seconds 0.03, got %v", out)
	}

	if _, err := sleepWorkload(); err == nil {
		t.Error("Expected an arity error")
	}
	if _, err := sleepWorkload("not-a-duration"); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestSpinWorkload(t *testing.T) {
	out, err := spinWorkload(1000)
	if err != nil {
		t.Fatalf("spinWorkload failed: %v", err)
	}
	again, err := spinWorkload(1000)
	if err != nil {
		t.Fatalf("spinWorkload failed: %v", err)
	}
	if out != again {
		t.Errorf("Checksum should be deterministic: %v vs %v", out, again)
	}

	if _, err := spinWorkload(-1); err == nil {
		t.Error("Expected an error for negative iterations")
	}
}

func TestBlake2bWorkload(t *testing.T) {
	out, err := blake2bWorkload(1024)
	if err != nil {
		t.Fatalf("blake2bWorkload failed: %v", err)
	}
	digest, ok := out.(string)
	if !ok || len(digest) != 16 {
		t.Errorf("Expected a 16-char hex digest, got %v", out)
	}

	if _, err := blake2bWorkload("big"); err == nil {
		t.Error("Expected a type error for a string size")
	}
}

func TestToDuration(t *testing.T) {
	tests := []struct {
		in   any
		want time.Duration
	}{
		{"5ms", 5 * time.Millisecond},
		{2, 2 * time.Second},
		{0.5, 500 * time.Millisecond},
		{time.Second, time.Second},
	}
	for _, tt := range tests {
		got, err := toDuration(tt.in)
		if err != nil {
			t.Errorf("toDuration(%v) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("toDuration(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := toDuration(true); err == nil {
		t.Error("Expected an error for a bool duration")
	}
}
