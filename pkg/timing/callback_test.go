package timing

import (
	"testing"
	"time"
)

func TestCallbackTimerFeedsExternalAccumulator(t *testing.T) {
	var cumul []time.Duration
	ct := NewCallbackTimer(func(s Sample) { cumul = append(cumul, s.Elapsed) })

	for i := 0; i < 4; i++ {
		ct.Start()
		time.Sleep(time.Duration(i) * 5 * time.Millisecond)
		ct.Stop()
	}

	if len(cumul) != 4 {
		t.Fatalf("Expected 4 callback invocations, got %d", len(cumul))
	}
	for i, d := range cumul {
		want := time.Duration(i) * 5 * time.Millisecond
		if d < want {
			t.Errorf("Callback %d received %v, shorter than the slept %v", i, d, want)
		}
	}
	if ct.Elapsed() != cumul[3] {
		t.Errorf("Elapsed() = %v, want the last callback value %v", ct.Elapsed(), cumul[3])
	}
}

func TestCallbackTimerWithoutPayload(t *testing.T) {
	var got Sample
	ct := NewCallbackTimer(func(s Sample) { got = s })

	ct.Start()
	ct.Stop()

	if got.Payload != nil {
		t.Errorf("Expected nil payload when none set, got %v", got.Payload)
	}
}

func TestCallbackTimerWithPayload(t *testing.T) {
	var got Sample
	ct := NewCallbackTimer(func(s Sample) { got = s })

	ct.Start()
	ct.SetPayload("context for this run")
	ct.Stop()

	if got.Payload != "context for this run" {
		t.Errorf("Payload: got %v", got.Payload)
	}
	if got.Elapsed != ct.Elapsed() {
		t.Errorf("Callback elapsed %v != timer elapsed %v", got.Elapsed, ct.Elapsed())
	}
}

func TestCallbackTimerStartClearsPayload(t *testing.T) {
	var samples []Sample
	ct := NewCallbackTimer(func(s Sample) { samples = append(samples, s) })

	ct.Start()
	ct.SetPayload(42)
	ct.Stop()

	ct.Start()
	ct.Stop()

	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(samples))
	}
	if samples[0].Payload != 42 {
		t.Errorf("First payload: got %v, want 42", samples[0].Payload)
	}
	if samples[1].Payload != nil {
		t.Errorf("Second scope should start with no payload, got %v", samples[1].Payload)
	}
}

func TestCallbackTimerNilCallback(t *testing.T) {
	ct := NewCallbackTimer(nil)
	ct.Start()
	d := ct.Stop()
	if d < 0 {
		t.Errorf("Elapsed went negative: %v", d)
	}
}
